package fsa

import (
	"maps"
)

// Creator builds an Action from a payload and extra fields.
type Creator func(payload any, extra Extra) Action

// CreatorEnhancer wraps a Creator to add behavior to action creation.
// An enhancer returns nil when it is handed a nil Creator.
type CreatorEnhancer func(next Creator) Creator

// ActionTypeFactory derives the fully-qualified action type from a short action name and a namespace.
type ActionTypeFactory func(name string, namespace string) string

// CreatorFactory builds the base Creator for a fully-qualified action type.
type CreatorFactory func(actionType string) Creator

// DefaultActionType joins namespace and name with a slash.
// An empty namespace means "no namespace" and yields the bare name.
func DefaultActionType(name string, namespace string) string {
	if namespace == "" {
		return name
	}

	return namespace + "/" + name
}

// DefaultCreatorFactory returns a Creator which builds {type, payload} actions and
// takes error and meta from the extra fields.
func DefaultCreatorFactory(actionType string) Creator {
	return func(payload any, extra Extra) Action {
		return Action{
			Type:    actionType,
			Payload: payload,
			Error:   extra.Error,
			Meta:    extra.Meta,
		}
	}
}

// PendingCreatorEnhancer makes next create actions with meta.pending set to true.
// Other meta keys of the extra are kept, the caller's meta map is never modified.
func PendingCreatorEnhancer(next Creator) Creator {
	if next == nil {
		return nil
	}

	return func(payload any, extra Extra) Action {
		meta := make(Meta, len(extra.Meta)+1)
		maps.Copy(meta, extra.Meta)
		meta[MetaPending] = true

		return next(payload, Extra{Error: extra.Error, Meta: meta})
	}
}

// ErrorCreatorEnhancer makes next create actions with error set to true.
func ErrorCreatorEnhancer(next Creator) Creator {
	if next == nil {
		return nil
	}

	return func(payload any, extra Extra) Action {
		extra.Error = true

		return next(payload, extra)
	}
}
