// Package fsa provides the Flux Standard Action data model and the building blocks
// for creating actions.
//
// An Action is the shape {type, payload, error?, meta?}. Actions are produced by a
// Creator, and Creators can be wrapped by CreatorEnhancers to add cross-cutting
// shaping such as the pending/error lifecycle flags:
//
//	create := DefaultCreatorFactory("todos/fetch")
//	pending := PendingCreatorEnhancer(create)
//	failed := ErrorCreatorEnhancer(create)
//
//	create(todos, Extra{})         // {type: "todos/fetch", payload: todos}
//	pending(nil, Extra{})          // {type: "todos/fetch", meta: {pending: true}}
//	failed(err, Extra{})           // {type: "todos/fetch", payload: err, error: true}
//
// Enhancers compose right-to-left with Compose, so Compose(a, b)(c) == a(b(c)).
package fsa
