package user

import (
	"errors"
	"strings"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleManager    Role = "GERENTE"
	RoleTechnician Role = "TECNICO"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleManager, RoleTechnician:
		return true
	default:
		return false
	}
}

// NewRole accepts role names case-insensitively ("admin" and "ADMIN" are the same role).
func NewRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
