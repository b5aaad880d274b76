package reducer

import (
	"github.com/AntonStoeckl/re-reducer-go/fsa"
)

// ActionCreator creates the actions for one registered action name.
//
// Type is the short name the action was registered with, ActionType the fully-qualified
// type the created actions carry.
type ActionCreator struct {
	Type       string
	ActionType string

	create  fsa.Creator
	pending fsa.Creator
	failed  fsa.Creator
}

// Call creates the action. Several extras are merged with fsa.MergeExtras.
func (c *ActionCreator) Call(payload any, extra ...fsa.Extra) fsa.Action {
	return c.create(payload, fsa.MergeExtras(extra...))
}

// Pending creates the action which starts the pending operation.
func (c *ActionCreator) Pending(payload any, extra ...fsa.Extra) fsa.Action {
	return c.pending(payload, fsa.MergeExtras(extra...))
}

// Error creates the action which ends the pending operation with payload as failure.
func (c *ActionCreator) Error(payload any, extra ...fsa.Extra) fsa.Action {
	return c.failed(payload, fsa.MergeExtras(extra...))
}
