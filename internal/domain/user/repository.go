package user

import "context"

// Repository is the persistence port for users.
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	ListAgents(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) error
	UpdateRole(ctx context.Context, id string, role Role) error
}
