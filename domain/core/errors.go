package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidParameter reports a numeric input outside its documented domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnderdetermined reports a call that supplies a value for the quantity
	// the function is meant to solve for.
	ErrUnderdetermined = errors.New("underdetermined call")

	// ErrConvergence reports a solver that could not bracket the target or ran
	// out of iterations before reaching it.
	ErrConvergence = errors.New("solver failed to converge")
)

// Error constructors with context
func NewInvalidParameterError(name string, value float64, reason string) error {
	return fmt.Errorf("%w: %s=%g %s", ErrInvalidParameter, name, value, reason)
}

func NewUnderdeterminedError(field string) error {
	return fmt.Errorf("%w: %s is the unknown here and must be left unset", ErrUnderdetermined, field)
}

func NewConvergenceError(target float64, reason string) error {
	return fmt.Errorf("%w: target power %.4f %s", ErrConvergence, target, reason)
}

// Error checking helpers
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

func IsUnderdetermined(err error) bool {
	return errors.Is(err, ErrUnderdetermined)
}

func IsConvergence(err error) bool {
	return errors.Is(err, ErrConvergence)
}
