package directory

import "errors"

var (
	// ErrUnknownAction is returned by Apply for an action type it does not know.
	ErrUnknownAction = errors.New("unknown filter action")

	// ErrInvalidMinYears is returned when a minimum years value is not a whole number >= 0.
	ErrInvalidMinYears = errors.New("minYears must be a whole number >= 0")

	// ErrInvalidExpertOnly is returned when the expertOnly query value is not a boolean.
	ErrInvalidExpertOnly = errors.New("expertOnly must be true or false")
)
