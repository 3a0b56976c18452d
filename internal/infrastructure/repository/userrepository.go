package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(gormDB *gorm.DB) *UserRepository {
	return &UserRepository{db: gormDB}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return userToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.Order("name ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return usersToDomain(userModels)
}

func (r *UserRepository) ListAgents(ctx context.Context) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var userModels []models.UserModel
	if err := tx.
		Where("role IN ?", []string{user.RoleAgent.String(), user.RoleAdmin.String()}).
		Order("name ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return usersToDomain(userModels)
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := models.UserModel{
		ID:        u.ID(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt().UnixMilli(),
	}
	if err := tx.Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role user.Role) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", id).
		Update("role", role.String())
	if result.Error != nil {
		return fmt.Errorf("failed to update user role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("user not found")
		}
	}
	return nil
}

func userToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		user.Role(model.Role),
		time.UnixMilli(model.CreatedAt),
	)
}

func usersToDomain(userModels []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := userToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
