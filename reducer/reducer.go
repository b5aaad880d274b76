package reducer

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
)

// Reducer maps (state, action) to the next state by dispatching on the action type.
type Reducer struct {
	namespace    string
	initialState any

	actionTypeFactory     fsa.ActionTypeFactory
	creatorFactory        fsa.CreatorFactory
	pendingCreatorFactory fsa.CreatorEnhancer
	errorCreatorFactory   fsa.CreatorEnhancer
	defaultHandle         Handler
	customDefaultHandle   bool
	actionEnhancers       []fsa.CreatorEnhancer
	handleEnhancers       []HandleEnhancer

	mode   Mode
	logger Logger

	handles    map[string]Handler // by action type, enhanced
	registered map[string]Handler // by action type, as passed to Register
	actions    map[string]*ActionCreator
}

// New creates a Reducer without any registered action, actions are added with Register.
func New(options ...Option) (*Reducer, error) {
	r := &Reducer{
		initialState:          map[string]any{},
		actionTypeFactory:     fsa.DefaultActionType,
		creatorFactory:        fsa.DefaultCreatorFactory,
		pendingCreatorFactory: fsa.PendingCreatorEnhancer,
		errorCreatorFactory:   fsa.ErrorCreatorEnhancer,
		mode:                  Development,
		logger:                slog.Default(),
		handles:               make(map[string]Handler),
		registered:            make(map[string]Handler),
		actions:               make(map[string]*ActionCreator),
	}

	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}

	if !r.customDefaultHandle {
		r.defaultHandle = NewDefaultHandle(r.mode)
	}

	if err := r.validateOptions(); err != nil {
		return nil, err
	}

	return r, nil
}

// Create creates a Reducer from a static map of action names to handlers.
// Entries are registered in lexical order of their names; a nil handler selects the default handle.
func Create(handles Handles, options ...Option) (*Reducer, error) {
	r, err := New(options...)
	if err != nil {
		return nil, err
	}

	for _, name := range slices.Sorted(maps.Keys(handles)) {
		if _, err := r.Register(name, handles[name]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds an action with its handle and returns the matching ActionCreator.
//
// A nil handle selects the default handle. The enhancers are applied after the
// reducer-wide action enhancers to the base, pending and error creator alike.
// Registering an action type again replaces its handle; replacing it with a different
// handle is reported as a warning.
func (r *Reducer) Register(name string, handle Handler, enhancers ...fsa.CreatorEnhancer) (*ActionCreator, error) {
	if err := invariant(r.mode, name != "", ErrEmptyActionName,
		"type expected a non-empty string, instead received %q.", name); err != nil {
		return nil, err
	}

	if handle == nil {
		handle = r.defaultHandle
	}

	for i, enhancer := range enhancers {
		if err := invariant(r.mode, enhancer != nil, ErrNilEnhancer,
			"enhancer[%d] expected a function, instead received nil.", i); err != nil {
			return nil, err
		}
	}

	actionType := r.actionTypeFactory(name, r.namespace)
	if err := invariant(r.mode, actionType != "", ErrEmptyActionType,
		"options.actionTypeFactory expected a function returning a non-empty string, instead returned %q.",
		actionType); err != nil {
		return nil, err
	}

	creator, err := r.buildActionCreator(name, actionType, enhancers)
	if err != nil {
		return nil, err
	}

	enhancedHandle := fsa.Compose(r.handleEnhancers...)(handle)
	if err := invariant(r.mode, enhancedHandle != nil, ErrNilEnhancerResult,
		"handleEnhancer expected a function returning a function, instead returned nil."); err != nil {
		return nil, err
	}

	previous, exists := r.registered[actionType]
	warning(
		r.mode,
		r.logger,
		!exists || sameHandler(previous, handle),
		"register overwrites action handle with a new handle",
		"actionType", actionType,
	)

	r.registered[actionType] = handle
	r.handles[actionType] = enhancedHandle
	r.actions[name] = creator

	r.logger.Debug("action registered", "type", name, "actionType", actionType)

	return creator, nil
}

func (r *Reducer) buildActionCreator(name, actionType string, enhancers []fsa.CreatorEnhancer) (*ActionCreator, error) {
	create := r.creatorFactory(actionType)
	if err := invariant(r.mode, create != nil, ErrNilCreator,
		"options.creatorFactory expected a function returning a function, instead returned nil."); err != nil {
		return nil, err
	}

	pending := r.pendingCreatorFactory(create)
	if err := invariant(r.mode, pending != nil, ErrNilPendingCreator,
		"options.pendingCreatorFactory expected a function returning a function, instead returned nil."); err != nil {
		return nil, err
	}

	failed := r.errorCreatorFactory(create)
	if err := invariant(r.mode, failed != nil, ErrNilErrorCreator,
		"options.errorCreatorFactory expected a function returning a function, instead returned nil."); err != nil {
		return nil, err
	}

	allEnhancers := append(slices.Clone(r.actionEnhancers), enhancers...)
	if len(allEnhancers) > 0 {
		enhance := fsa.Compose(allEnhancers...)

		create, pending, failed = enhance(create), enhance(pending), enhance(failed)

		if err := invariant(r.mode, create != nil && pending != nil && failed != nil, ErrNilEnhancerResult,
			"enhancer expected a function returning a function, instead returned nil."); err != nil {
			return nil, err
		}
	}

	return &ActionCreator{
		Type:       name,
		ActionType: actionType,
		create:     create,
		pending:    pending,
		failed:     failed,
	}, nil
}

// Reduce returns the next state for action.
//
// A nil state is replaced by the initial state. When no handle is registered for the
// action type, state is returned unchanged, so callers can detect a no-op dispatch by identity.
func (r *Reducer) Reduce(state any, action fsa.Action) (any, error) {
	if state == nil {
		state = r.initialState
	}

	handle, ok := r.handles[action.Type]
	if !ok {
		return state, nil
	}

	return handle(state, action)
}

// Fold replays history on top of state and returns the resulting state.
// It stops at the first handler error and returns the state reached so far together with the error.
func (r *Reducer) Fold(state any, history ...fsa.Action) (any, error) {
	var err error

	for _, action := range history {
		var next any

		next, err = r.Reduce(state, action)
		if err != nil {
			return state, err
		}

		state = next
	}

	if state == nil {
		state = r.initialState
	}

	return state, nil
}

// Handles returns a snapshot of the dispatch table keyed by fully-qualified action type.
func (r *Reducer) Handles() map[string]Handler {
	return maps.Clone(r.handles)
}

// Actions returns a snapshot of the registered action creators keyed by short name.
func (r *Reducer) Actions() map[string]*ActionCreator {
	return maps.Clone(r.actions)
}

// Action returns the action creator registered under name.
func (r *Reducer) Action(name string) (*ActionCreator, bool) {
	creator, ok := r.actions[name]

	return creator, ok
}

// Namespace returns the namespace prepended to action names.
func (r *Reducer) Namespace() string {
	return r.namespace
}

// InitialState returns the state Reduce starts from.
func (r *Reducer) InitialState() any {
	return r.initialState
}

// Mode returns the diagnostics mode.
func (r *Reducer) Mode() Mode {
	return r.mode
}

// sameHandler compares code pointers. Closures created by the same function literal compare equal.
func sameHandler(a, b Handler) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
