package domain

import (
	"errors"
	"time"
)

// Role is the coarse-grained classification of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Permission is a capability granted to a principal through its role.
type Permission string

const (
	PermissionUser  Permission = "user"
	PermissionAdmin Permission = "admin"
)

// Permissions returns the permission set granted by the role.
// Admins also hold the regular user permission.
func (r Role) Permissions() []Permission {
	switch r {
	case RoleAdmin:
		return []Permission{PermissionAdmin, PermissionUser}
	case RoleUser:
		return []Permission{PermissionUser}
	default:
		return nil
	}
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidRegistration = errors.New("invalid registration data")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models a registered account. The password hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated identity attached to a request for the
// duration of its processing.
type Principal struct {
	User        *User
	Permissions map[Permission]struct{}
}

// NewPrincipal derives a principal from a stored user record.
func NewPrincipal(u *User) *Principal {
	perms := make(map[Permission]struct{})
	for _, p := range u.Role.Permissions() {
		perms[p] = struct{}{}
	}
	return &Principal{User: u, Permissions: perms}
}

// Has reports whether the principal holds the given permission.
func (p *Principal) Has(perm Permission) bool {
	_, ok := p.Permissions[perm]
	return ok
}
