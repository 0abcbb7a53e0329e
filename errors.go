package hilbert

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every error reporting a coordinate or index
	// outside the declared domain.
	ErrDomain = errors.New("hilbert: value outside domain")

	// ErrTruncation is matched by every error reporting a value that does
	// not fit its destination type.
	ErrTruncation = errors.New("hilbert: value truncated")

	// ErrConfiguration is matched by every error reporting inconsistent
	// descriptor parameters.
	ErrConfiguration = errors.New("hilbert: invalid configuration")
)

// DomainError reports a coordinate or index outside the declared domain.
//
// Axis is -1 when the offending value is the index or the vector length.
type DomainError struct {
	Op     string
	Axis   int
	Value  string
	Reason string
}

func (e *DomainError) Error() string {
	if e.Axis >= 0 {
		return fmt.Sprintf("hilbert: %s: axis %d value %s %s", e.Op, e.Axis, e.Value, e.Reason)
	}
	return fmt.Sprintf("hilbert: %s: %s %s", e.Op, e.Value, e.Reason)
}

func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// TruncationError reports a value needing more bits than its destination
// type holds.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type TruncationError struct {
	Op    string
	Need  int
	Have  int
	cause error
}

func (e *TruncationError) Error() string {
	return fmt.Sprintf("hilbert: %s: value needs %d bits, destination holds %d", e.Op, e.Need, e.Have)
}

func (e *TruncationError) Is(target error) bool { return target == ErrTruncation }

func (e *TruncationError) Unwrap() error { return e.cause }

// ConfigError reports descriptor parameters that cannot describe a curve.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConfigError struct {
	Param  string
	Reason string
	cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("hilbert: invalid %s: %s", e.Param, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigError) Unwrap() error { return e.cause }

func configErrorf(param, format string, args ...any) *ConfigError {
	return &ConfigError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
