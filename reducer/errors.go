package reducer

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation matches every *InvariantError via errors.Is.
var ErrInvariantViolation = errors.New("invariant violation")

// MinifiedMessage is the message every *InvariantError carries in Production mode.
const MinifiedMessage = "minified exception occurred; use development mode " +
	"for the full error message and additional helpful warnings"

var (
	ErrEmptyActionName          = errors.New("action name must not be empty")
	ErrEmptyActionType          = errors.New("action type factory returned an empty action type")
	ErrNilHandle                = errors.New("handle must not be nil")
	ErrNilEnhancer              = errors.New("enhancer must not be nil")
	ErrNilEnhancerResult        = errors.New("enhancer returned nil")
	ErrNilCreator               = errors.New("creator factory returned nil")
	ErrNilPendingCreator        = errors.New("pending creator factory returned nil")
	ErrNilErrorCreator          = errors.New("error creator factory returned nil")
	ErrNilActionTypeFactory     = errors.New("action type factory must not be nil")
	ErrNilCreatorFactory        = errors.New("creator factory must not be nil")
	ErrNilPendingCreatorFactory = errors.New("pending creator factory must not be nil")
	ErrNilErrorCreatorFactory   = errors.New("error creator factory must not be nil")
	ErrNilDefaultHandle         = errors.New("default handle must not be nil")
	ErrNilLogger                = errors.New("logger must not be nil")
	ErrInvalidState             = errors.New("state is not an object")
	ErrUnknownMode              = errors.New("unknown mode")
	ErrParsingConfigFailed      = errors.New("parsing reducer config failed")
)

// InvariantError is returned when a caller violates a precondition.
//
// Unwrap yields the specific sentinel (e.g. ErrNilHandle) in every mode,
// only the message differs between Development and Production.
type InvariantError struct {
	Cause   error
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

func (e *InvariantError) Unwrap() error {
	return e.Cause
}

// Is makes every InvariantError match ErrInvariantViolation.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// invariant returns nil when condition holds, an *InvariantError wrapping cause otherwise.
func invariant(mode Mode, condition bool, cause error, format string, args ...any) error {
	if condition {
		return nil
	}

	if mode == Production {
		return &InvariantError{Cause: cause, Message: MinifiedMessage}
	}

	return &InvariantError{Cause: cause, Message: fmt.Sprintf(format, args...)}
}

// warning reports a soft diagnostic through logger when condition does not hold.
// It is silent in Production mode.
func warning(mode Mode, logger Logger, condition bool, msg string, args ...any) {
	if condition || mode == Production {
		return
	}

	logger.Warn(msg, args...)
}
