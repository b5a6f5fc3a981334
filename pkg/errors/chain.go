package errors

import (
	"strings"
)

// ChainError wraps a dependency failure with the profile whose load pulled
// it in. Chains nest as the failure propagates up the dependency tree and
// render as a single breadcrumb trace ending in the root cause:
//
//	Trace: work -> tools -> [PROFILE_IO] ...
type ChainError struct {
	Profile string
	Cause   error
}

// Chain wraps err with the profile that was loading when it occurred.
// Returns nil if err is nil.
func Chain(profile string, err error) error {
	if err == nil {
		return nil
	}
	return &ChainError{Profile: profile, Cause: err}
}

// Error implements the error interface
func (e *ChainError) Error() string {
	trace := []string{e.Profile}
	cause := e.Cause
	for {
		chain, ok := cause.(*ChainError)
		if !ok {
			break
		}
		trace = append(trace, chain.Profile)
		cause = chain.Cause
	}
	return "Trace: " + strings.Join(trace, " -> ") + " -> " + cause.Error()
}

// Unwrap implements the errors.Unwrap interface
func (e *ChainError) Unwrap() error {
	return e.Cause
}

// MultiError aggregates independent failures from separate branches of one
// operation. It renders one member per line; nested chains and aggregates
// recurse through their own Error methods.
type MultiError struct {
	Errors []error
}

// Collect folds a slice of errors into a single error value: nil for an
// empty slice, the sole member for a singleton, a MultiError otherwise.
func Collect(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &MultiError{Errors: errs}
	}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Unwrap returns the member errors so errors.Is and errors.As can match
// through the aggregate.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}
