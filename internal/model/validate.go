package model

import "github.com/go-playground/validator/v10"

// validate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = validator.New()

// Validate checks an entity value against its field constraints
// (required fields, status enums, email format, non-negative amounts).
func Validate(v any) error {
	return validate.Struct(v)
}
