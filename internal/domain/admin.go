package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

type Admin struct {
	Id           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// HasAdminRole reports whether the account carries one of the roles
// allowed through the admin gate.
func (a Admin) HasAdminRole() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}
