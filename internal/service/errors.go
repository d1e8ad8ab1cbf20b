package service

import (
	"errors"
	"fmt"

	"go-restaurant-os/pkg/validator"
)

var (
	// Auth errors. Unknown username and wrong password deliberately share
	// the same error so there is no oracle distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrForbidden          = errors.New("operation not permitted for this role")

	// Not-found errors
	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCouponNotFound   = errors.New("coupon not found")
)

// ValidationError reports malformed or out-of-range input. Nothing was
// mutated; the caller re-prompts.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// validateInput runs struct validation and converts the first failure
// into a ValidationError
func validateInput(data interface{}) error {
	errs := validator.ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return &ValidationError{
		Field:  first.FailedField,
		Reason: fmt.Sprintf("failed on %q", first.Tag),
	}
}
