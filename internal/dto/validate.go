package dto

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for request DTOs. There is no
// HTTP binding layer, so services call Validate directly before mutating
// anything.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on a request DTO.
func Validate(s any) error {
	return validate.Struct(s)
}
