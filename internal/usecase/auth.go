package usecase

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/auth.go -package=usecasemock

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"salon-booking/internal/domain/auth"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid operator id or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type LoginResult struct {
	AccessToken string
	OperatorID  string
	ExpiresIn   int64
}

type AuthUseCase interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authUseCaseImpl struct {
	operator   config.OperatorConfig
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthUseCase(operator config.OperatorConfig, jwtService *jwt.Service, logger *slog.Logger) AuthUseCase {
	return &authUseCaseImpl{
		operator:   operator,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(req.OperatorID, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	idMatches := subtle.ConstantTimeCompare([]byte(credentials.OperatorID()), []byte(a.operator.ID)) == 1
	// compare the hash even for a wrong id so both failures take the same time
	hashErr := password.ComparePassword(a.operator.PasswordHash, credentials.Password().Value())
	if !idMatches || hashErr != nil {
		a.logger.WarnContext(ctx, "operator login rejected", "operator_id", credentials.OperatorID())
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(credentials.OperatorID(), auth.RoleOperator.String())
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &LoginResult{
		AccessToken: token,
		OperatorID:  credentials.OperatorID(),
		ExpiresIn:   int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}
