package hulls

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every error returned from Parameters.Validate.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError reports which hull parameter violated which constraint.
type ParameterError struct {
	Field      string
	Constraint string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("hulls: %s %s: %s", ErrInvalidParameter, e.Field, e.Constraint)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func paramErr(field, constraint string) error {
	return &ParameterError{Field: field, Constraint: constraint}
}
