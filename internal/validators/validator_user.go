package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-catalog-api/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !IsValidUsername(user.Username) {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !IsValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidUsername reports whether username is 3-20 characters drawn from
// letters, digits, underscore and hyphen.
func IsValidUsername(username string) bool {
	if len(username) < usernameMinLen || len(username) > usernameMaxLen {
		return false
	}
	return usernamePattern.MatchString(username)
}

// IsValidEmail reports whether email matches a light-weight RFC-style
// pattern. It is a format check only, not a deliverability guarantee.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
