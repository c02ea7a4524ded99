package piechart

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a chart is requested for an empty
	// cluster.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvariantViolation is returned when a tally does not add up to
	// the total it is rendered with.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrConfiguration is returned for unmapped categories and invalid
	// configuration values.
	ErrConfiguration = errors.New("configuration error")
)

// ConfigurationError names a category that has no color in the color
// table.
type ConfigurationError struct {
	Category string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: no color for category %q", ErrConfiguration, e.Category)
}

// Unwrap makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
