package client

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrInvalidName   = errors.New("client name must be 2-64 characters")
	ErrInvalidPhone  = errors.New("phone must be 11 digits starting with 7 or 8, or 10 digits starting with 9")
	ErrInvalidUserID = errors.New("user id must not be empty")
)

const (
	MinNameLength = 2
	MaxNameLength = 64
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.Join(strings.Fields(s), " ")
	n := utf8.RuneCountInString(s)
	if n < MinNameLength || n > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string {
	return n.value
}

func (n Name) IsZero() bool {
	return n.value == ""
}

// Phone holds digits only. Formatting characters (space, '+', '-', '(', ')', '.') are dropped;
// anything else makes the input invalid.
type Phone struct {
	digits string
}

func NewPhone(raw string) (Phone, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case unicode.IsDigit(r) && r < utf8.RuneSelf:
			b.WriteRune(r)
		case strings.ContainsRune(" +-().", r):
		default:
			return Phone{}, ErrInvalidPhone
		}
	}

	digits := b.String()
	switch {
	case len(digits) == 11 && (digits[0] == '7' || digits[0] == '8'):
	case len(digits) == 10 && digits[0] == '9':
	default:
		return Phone{}, ErrInvalidPhone
	}
	return Phone{digits: digits}, nil
}

func (p Phone) String() string {
	return p.digits
}

func (p Phone) IsZero() bool {
	return p.digits == ""
}

func ValidateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidUserID
	}
	return nil
}
