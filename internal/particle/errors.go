package particle

import (
	"errors"
	"fmt"
)

// Domain errors for the steam core.
var (
	// ErrInvalidConfig indicates a construction parameter outside its valid range.
	ErrInvalidConfig = errors.New("steam: invalid configuration")

	// ErrOutOfBounds indicates a spawn position outside the placement box.
	ErrOutOfBounds = errors.New("steam: spawn position out of bounds")

	// ErrUnknownParticle indicates an id that is not live in the store.
	ErrUnknownParticle = errors.New("steam: unknown particle")
)

// ConfigError wraps ErrInvalidConfig with the offending field.
type ConfigError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %g", e.Wrapped, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

// InvalidConfig builds a ConfigError for field.
func InvalidConfig(field string, value float64) error {
	return &ConfigError{Field: field, Value: value, Wrapped: ErrInvalidConfig}
}

// BoundsError is returned by a bounded store when a spawn position falls
// outside [0, Width] x [0, Height].
type BoundsError struct {
	X, Y          float64
	Width, Height float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: (%g, %g) not in [0, %g] x [0, %g]", ErrOutOfBounds, e.X, e.Y, e.Width, e.Height)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
