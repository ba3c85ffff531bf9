package app

import (
	"errors"
	"fmt"
)

var (
	// ErrInit is returned when the application cannot be initialized.
	ErrInit = errors.New("application initialization failed")

	// ErrPropertyParse is the kind of a PropertyError whose value could
	// not be parsed.
	ErrPropertyParse = errors.New("property parse error")

	// ErrInvalidConfig is the kind of a PropertyError whose value parsed
	// but is not acceptable.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PropertyError reports a bad property value.
type PropertyError struct {
	Name     string
	Value    string
	Expected string
	Kind     error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("%v: property %s = %q, expected %s", e.Kind, e.Name, e.Value, e.Expected)
}

func (e *PropertyError) Unwrap() error {
	return e.Kind
}
