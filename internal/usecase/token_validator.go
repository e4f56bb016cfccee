package usecase

import (
	"hecho-core/internal/domain/user"
	"hecho-core/internal/pkg/jwt"
)

// Principal is the caller identity carried by a bearer token.
type Principal struct {
	UserID string
	OrgID  string
	Role   user.Role
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Principal{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Principal{}, err
	}

	return Principal{UserID: claims.UserID, OrgID: claims.OrgID, Role: role}, nil
}
