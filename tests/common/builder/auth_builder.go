//go:build unit || e2e

package builder

import (
	reqdto "salon-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	OperatorID string
	Password   string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		OperatorID: "operator",
		Password:   "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		OperatorID: a.OperatorID,
		Password:   a.Password,
	}
}
