package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (string, auth.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, auth.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return "", "", ErrTokenValidation
	}

	return claims.Subject, role, nil
}
