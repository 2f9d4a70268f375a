package bezier

import (
	"errors"
	"fmt"
)

var (
	// ErrPrecondition is matched by every [PreconditionError].
	ErrPrecondition = errors.New("precondition violated")
	// ErrInvalidParameter is returned by the Controller's setters.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrTooFewPoints is returned when an operation needs a curve but fewer
	// than two control points exist.
	ErrTooFewPoints = errors.New("too few control points")
	// ErrIndexOutOfRange is returned for control point indices that don't exist.
	ErrIndexOutOfRange = errors.New("control point index out of range")
)

// PreconditionError describes a call that violated an operation's contract,
// such as evaluating a curve with fewer than two control points. These are
// programmer errors; the operations panic with a *PreconditionError instead
// of returning it.
type PreconditionError struct {
	Op     string
	Reason string
}

func (err *PreconditionError) Error() string {
	return fmt.Sprintf("bezier: %s: %s", err.Op, err.Reason)
}

func (err *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

func violate(op string, format string, args ...any) {
	panic(&PreconditionError{Op: op, Reason: fmt.Sprintf(format, args...)})
}

func checkT(op string, t float64) error {
	// Written so that NaN fails the check.
	if !(t >= 0 && t <= 1) {
		return &PreconditionError{Op: op, Reason: fmt.Sprintf("t = %g is outside [0, 1]", t)}
	}
	return nil
}
