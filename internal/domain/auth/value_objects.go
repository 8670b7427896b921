package auth

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid operator id or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordTooWeak    = errors.New("password must be at least 8 characters long")
)

type Role string

const (
	RoleClient   Role = "client"
	RoleOperator Role = "operator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleOperator:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials is an operator login attempt.
type Credentials struct {
	operatorID string
	password   Password
}

func NewCredentials(operatorID, passwordStr string) (Credentials, error) {
	operatorID = strings.TrimSpace(operatorID)
	if operatorID == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{operatorID: operatorID, password: password}, nil
}

func (c Credentials) OperatorID() string {
	return c.operatorID
}

func (c Credentials) Password() Password {
	return c.password
}
