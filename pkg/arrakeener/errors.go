package arrakeener

import (
	"errors"
	"fmt"
)

// Sentinel errors matched through errors.Is
var (
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrOverflow             = errors.New("integer overflow")
	ErrInvalidArgument      = errors.New("invalid argument")
)

// Resource names used in InsufficientResourceError
const (
	ResourceEnergy  = "energy"
	ResourceSolaris = "solaris"
	ResourceSpice   = "spice"
)

// InsufficientResourceError reports that an operation needed more of a
// counter than the Arrakeener holds
type InsufficientResourceError struct {
	Resource string
	Have     int64
	Need     int64
}

func (e *InsufficientResourceError) Error() string {
	return fmt.Sprintf("Insufficient %s: have %d, need %d", e.Resource, e.Have, e.Need)
}

// Is reports whether target is ErrInsufficientResource
func (e *InsufficientResourceError) Is(target error) bool {
	return target == ErrInsufficientResource
}

// OverflowError reports that a counter update would leave the int64 range
type OverflowError struct {
	Op string
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("Integer overflow in %s", e.Op)
}

// Is reports whether target is ErrOverflow
func (e *OverflowError) Is(target error) bool {
	return target == ErrOverflow
}

// InvalidArgumentError reports a spice amount the operations cannot accept
type InvalidArgumentError struct {
	Arg    string
	Value  int64
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid %s %d: %s", e.Arg, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidArgument
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
