// Package user contains the user entity and role definitions. Every caller
// of the system resolves to exactly one user row; the role on that row is
// the sole authorization input and is re-read on every request.
package user

import (
	"fmt"
	"time"
)

// Role is the principal's role. It gates every boundary operation.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// IsAgentOrAdmin reports whether the role satisfies the agent gate.
func (r Role) IsAgentOrAdmin() bool {
	return r == RoleAgent || r == RoleAdmin
}

// IsAdmin reports whether the role satisfies the admin gate.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	id        string
	name      string
	role      Role
	createdAt time.Time
}

func NewUser(id, name string, role Role) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:        id,
		name:      name,
		role:      role,
		createdAt: time.Now(),
	}, nil
}

func ReconstructUser(id, name string, role Role, createdAt time.Time) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:        id,
		name:      name,
		role:      role,
		createdAt: createdAt,
	}, nil
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// ChangeRole moves the user to a new role. Admin-only at the boundary.
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	return nil
}
