package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be 3-20 characters of letters, digits, underscore or hyphen")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidPrice = errors.New("price must be between 0 and 999999.99")
	ErrInvalidStock = errors.New("stock must be between 0 and 1000000")
)
