package reducer

import (
	"maps"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
)

// Status is the lifecycle status of a state which tracks pending and/or error.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// StatusOf classifies state by its pending and error keys.
// A state is failed when error holds a value other than nil or false, pending when pending is true,
// and idle otherwise (including every state which is not a map[string]any).
func StatusOf(state any) Status {
	object, ok := state.(map[string]any)
	if !ok {
		return StatusIdle
	}

	if failure, exists := object[StateError]; exists && failure != nil && failure != false {
		return StatusFailed
	}

	if pending, _ := object[StatePending].(bool); pending {
		return StatusPending
	}

	return StatusIdle
}

// FluxStandardActionHandleEnhancer handles the pending/error lifecycle centrally so that
// next only ever sees non-lifecycle actions.
//
// For an action with meta.pending or error, next is not invoked:
//
//	state has neither pending nor error key -> state is returned unchanged
//	pending action                           -> pending: true, error: nil
//	error action                             -> pending: false, error: payload
//
// Only the keys the state already has are written.
func FluxStandardActionHandleEnhancer(next Handler) Handler {
	if next == nil {
		return nil
	}

	return func(state any, action fsa.Action) (any, error) {
		if !action.IsLifecycle() {
			return next(state, action)
		}

		object, ok := state.(map[string]any)
		if !ok {
			return state, nil
		}

		_, hasPending := object[StatePending]
		_, hasError := object[StateError]

		if !hasPending && !hasError {
			return state, nil
		}

		nextState := maps.Clone(object)

		// error wins over pending when an action carries both flags
		if action.Error {
			if hasPending {
				nextState[StatePending] = false
			}
			if hasError {
				nextState[StateError] = action.Payload
			}

			return nextState, nil
		}

		if hasPending {
			nextState[StatePending] = true
		}
		if hasError {
			nextState[StateError] = nil
		}

		return nextState, nil
	}
}
