package fsa

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidActionJSON = errors.New("action json is not valid")
var ErrMarshalingActionFailed = errors.New("marshaling action to json failed")

// actionJSON is the wire shape of an Action; absent fields are omitted.
type actionJSON struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
	Error   bool   `json:"error,omitempty"`
	Meta    Meta   `json:"meta,omitempty"`
}

// MarshalJSON encodes the action as {"type", "payload"?, "error"?, "meta"?}.
func (a Action) MarshalJSON() ([]byte, error) {
	data, err := jsoniter.ConfigFastest.Marshal(actionJSON(a))
	if err != nil {
		return nil, errors.Join(ErrMarshalingActionFailed, err)
	}

	return data, nil
}

// UnmarshalJSON decodes a Flux Standard Action.
// Numbers in payload and meta decode to float64, objects to map[string]any.
func (a *Action) UnmarshalJSON(data []byte) error {
	var wire actionJSON

	if err := jsoniter.ConfigFastest.Unmarshal(data, &wire); err != nil {
		return errors.Join(ErrInvalidActionJSON, err)
	}

	*a = Action(wire)

	return nil
}

// ActionFromJSON is a factory method for Action.
//
// It decodes the given JSON and validates the result.
// Returns an error if the JSON is malformed or the action has no type.
func ActionFromJSON(data []byte) (Action, error) {
	if !jsoniter.ConfigFastest.Valid(data) {
		return Action{}, ErrInvalidActionJSON
	}

	var action Action
	if err := action.UnmarshalJSON(data); err != nil {
		return Action{}, err
	}

	if err := action.Validate(); err != nil {
		return Action{}, errors.Join(ErrInvalidActionJSON, err)
	}

	return action, nil
}
