package reducer

import (
	"fmt"
	"log/slog"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
)

// Logger interface for registration logging and the duplicate-registration warning.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Mode decides how diagnostics are reported.
type Mode int

const (
	// Development reports descriptive invariant messages and warnings.
	Development Mode = iota
	// Production reports a generic invariant message and no warnings.
	Production
)

func (m Mode) String() string {
	switch m {
	case Development:
		return "development"
	case Production:
		return "production"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "development" and "production" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "development", "":
		return Development, nil
	case "production":
		return Production, nil
	default:
		return Development, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Option defines a functional option for configuring a Reducer.
type Option func(*Reducer) error

// WithNamespace sets the namespace prepended to every action name.
func WithNamespace(namespace string) Option {
	return func(r *Reducer) error {
		r.namespace = namespace
		return nil
	}
}

// WithInitialState sets the state Reduce starts from when it is handed a nil state.
func WithInitialState(state any) Option {
	return func(r *Reducer) error {
		r.initialState = state
		return nil
	}
}

// WithActionTypeFactory replaces fsa.DefaultActionType.
func WithActionTypeFactory(factory fsa.ActionTypeFactory) Option {
	return func(r *Reducer) error {
		r.actionTypeFactory = factory
		return nil
	}
}

// WithDefaultHandle replaces the handle used when Register is called with a nil handle.
func WithDefaultHandle(handle Handler) Option {
	return func(r *Reducer) error {
		r.defaultHandle = handle
		r.customDefaultHandle = true
		return nil
	}
}

// WithCreatorFactory replaces fsa.DefaultCreatorFactory.
func WithCreatorFactory(factory fsa.CreatorFactory) Option {
	return func(r *Reducer) error {
		r.creatorFactory = factory
		return nil
	}
}

// WithPendingCreatorFactory replaces fsa.PendingCreatorEnhancer.
func WithPendingCreatorFactory(factory fsa.CreatorEnhancer) Option {
	return func(r *Reducer) error {
		r.pendingCreatorFactory = factory
		return nil
	}
}

// WithErrorCreatorFactory replaces fsa.ErrorCreatorEnhancer.
func WithErrorCreatorFactory(factory fsa.CreatorEnhancer) Option {
	return func(r *Reducer) error {
		r.errorCreatorFactory = factory
		return nil
	}
}

// WithActionEnhancer adds an enhancer applied to the base, pending and error creator of every action.
// Can be used multiple times. Enhancers are composed right-to-left:
// for enhancers A, B the creator is A(B(creator)).
func WithActionEnhancer(enhancer fsa.CreatorEnhancer) Option {
	return func(r *Reducer) error {
		r.actionEnhancers = append(r.actionEnhancers, enhancer)
		return nil
	}
}

// WithHandleEnhancer adds an enhancer applied to every registered handle.
// Can be used multiple times. Enhancers are composed right-to-left.
func WithHandleEnhancer(enhancer HandleEnhancer) Option {
	return func(r *Reducer) error {
		r.handleEnhancers = append(r.handleEnhancers, enhancer)
		return nil
	}
}

// WithMode sets the diagnostics mode, Development is the default.
func WithMode(mode Mode) Option {
	return func(r *Reducer) error {
		if mode != Development && mode != Production {
			return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
		}

		r.mode = mode
		return nil
	}
}

// WithLogger sets the logger for the Reducer.
// The logger will receive messages at different levels:
//
// Debug level: every registered action type
// Warn level: a handle being overwritten by a different one (Development mode only).
func WithLogger(logger Logger) Option {
	return func(r *Reducer) error {
		if logger == nil {
			return ErrNilLogger
		}

		r.logger = logger
		return nil
	}
}

func (r *Reducer) validateOptions() error {
	checks := []struct {
		ok    bool
		cause error
		name  string
	}{
		{r.actionTypeFactory != nil, ErrNilActionTypeFactory, "actionTypeFactory"},
		{r.creatorFactory != nil, ErrNilCreatorFactory, "creatorFactory"},
		{r.pendingCreatorFactory != nil, ErrNilPendingCreatorFactory, "pendingCreatorFactory"},
		{r.errorCreatorFactory != nil, ErrNilErrorCreatorFactory, "errorCreatorFactory"},
		{r.defaultHandle != nil, ErrNilDefaultHandle, "defaultHandle"},
	}

	for _, check := range checks {
		if err := invariant(
			r.mode,
			check.ok,
			check.cause,
			"options.%s expected a function, instead received nil.",
			check.name,
		); err != nil {
			return err
		}
	}

	for i, enhancer := range r.actionEnhancers {
		if err := invariant(r.mode, enhancer != nil, ErrNilEnhancer,
			"options.actionEnhancer[%d] expected a function, instead received nil.", i); err != nil {
			return err
		}
	}

	for i, enhancer := range r.handleEnhancers {
		if err := invariant(r.mode, enhancer != nil, ErrNilEnhancer,
			"options.handleEnhancer[%d] expected a function, instead received nil.", i); err != nil {
			return err
		}
	}

	return nil
}

// ensure *slog.Logger keeps satisfying Logger
var _ Logger = (*slog.Logger)(nil)
