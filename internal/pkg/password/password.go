package password

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidHash      = errors.New("invalid password hash")
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 8
	// bcrypt ignores everything past 72 bytes.
	MaxBytes = 72
)

func HashPassword(password string) (string, error) {
	if utf8.RuneCountInString(password) < MinLength || len(password) > MaxBytes {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	if _, err := bcrypt.Cost([]byte(hashedPassword)); err != nil {
		return ErrInvalidHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
