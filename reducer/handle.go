package reducer

import (
	"maps"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
)

// Keys of an object state which opt in to lifecycle tracking.
const (
	StatePending = "pending"
	StateError   = "error"
)

// Handler is the state transition registered for one action type.
// It must not modify state in place, it returns the next state instead.
type Handler func(state any, action fsa.Action) (any, error)

// HandleEnhancer wraps a Handler to add behavior to state handling.
// An enhancer returns nil when it is handed a nil Handler.
type HandleEnhancer func(next Handler) Handler

// Handles maps short action names to their handlers.
type Handles map[string]Handler

// DefaultHandle is the default Handler in Development mode, see NewDefaultHandle.
var DefaultHandle = NewDefaultHandle(Development)

// NewDefaultHandle returns the handler which merges object payloads into object state.
//
//   - state must be a non-nil map[string]any, otherwise an *InvariantError wrapping ErrInvalidState is returned
//   - pending and error actions return state unchanged
//   - a map[string]any payload is merged into a copy of state, other payloads merge nothing
//   - pending is set to false in the result if and only if state already had a pending key
func NewDefaultHandle(mode Mode) Handler {
	return func(state any, action fsa.Action) (any, error) {
		object, ok := state.(map[string]any)
		if err := invariant(
			mode,
			ok && object != nil,
			ErrInvalidState,
			"state expected an object, instead received %v.",
			state,
		); err != nil {
			return nil, err
		}

		if action.IsLifecycle() {
			return state, nil
		}

		_, tracksPending := object[StatePending]

		next := maps.Clone(object)
		if payload, isObject := action.Payload.(map[string]any); isObject {
			maps.Copy(next, payload)
		}

		if tracksPending {
			next[StatePending] = false
		}

		return next, nil
	}
}
