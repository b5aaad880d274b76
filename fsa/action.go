package fsa

import (
	"errors"
	"maps"
)

// ErrEmptyActionType is returned when an action carries no type.
var ErrEmptyActionType = errors.New("action type must not be empty")

// MetaPending is the meta key which flags an action as the start of a pending operation.
const MetaPending = "pending"

// MetaCorrelationID is the meta key set by CorrelationCreatorEnhancer.
const MetaCorrelationID = "correlationId"

// Meta holds the optional meta information of an Action.
type Meta map[string]any

// Pending reports whether the meta carries pending: true.
func (m Meta) Pending() bool {
	pending, _ := m[MetaPending].(bool)

	return pending
}

// Action is a Flux Standard Action.
//
// Type identifies the handler a reducer invokes. Error and Meta.Pending are lifecycle flags
// which tell how Payload has to be interpreted.
type Action struct {
	Type    string
	Payload any
	Error   bool
	Meta    Meta
}

// Actions is an alias type for a slice of Action
type Actions = []Action

// IsPending reports whether the action starts a pending operation.
func (a Action) IsPending() bool {
	return a.Meta.Pending()
}

// IsLifecycle reports whether the action carries one of the lifecycle flags.
func (a Action) IsLifecycle() bool {
	return a.Error || a.Meta.Pending()
}

// Validate ensures the action has the minimal Flux Standard Action shape.
func (a Action) Validate() error {
	if a.Type == "" {
		return ErrEmptyActionType
	}

	return nil
}

// Extra holds the fields a Creator merges into the created Action besides type and payload.
type Extra struct {
	Error bool
	Meta  Meta
}

// MergeExtras merges extras left to right: meta keys of later extras win, error flags are ORed.
// The returned Meta is a fresh map (or nil when no extra carries meta), so callers may modify it.
func MergeExtras(extras ...Extra) Extra {
	var merged Extra

	for _, extra := range extras {
		merged.Error = merged.Error || extra.Error

		if len(extra.Meta) == 0 {
			continue
		}

		if merged.Meta == nil {
			merged.Meta = make(Meta, len(extra.Meta))
		}

		maps.Copy(merged.Meta, extra.Meta)
	}

	return merged
}
