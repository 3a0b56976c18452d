package usecases

import (
	"context"

	"helpdesk/internal/application/admin/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return dto.ToUserDTOs(users), nil
}

type UpdateUserRoleCommand struct {
	UserID string
	Role   string
}

type UpdateUserRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserRoleUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserRoleUseCase {
	return &UpdateUserRoleUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserRoleUseCase) Execute(ctx context.Context, cmd UpdateUserRoleCommand) error {
	if cmd.UserID == "" {
		return errors.NewBadRequestError("user ID is required")
	}
	role := user.Role(cmd.Role)
	if !role.IsValid() {
		return errors.NewValidationError("invalid role")
	}

	if err := uc.userRepo.UpdateRole(ctx, cmd.UserID, role); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to update user role", "user_id", cmd.UserID, "error", err)
		}
		return err
	}

	uc.logger.Infow("user role updated", "user_id", cmd.UserID, "role", cmd.Role)
	return nil
}
