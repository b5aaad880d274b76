package main

import (
	"github.com/AntonStoeckl/re-reducer-go/fsa"
	"github.com/AntonStoeckl/re-reducer-go/reducer"
)

// MetaKind selects how a change action is applied to the counter.
const MetaKind = "kind"

const (
	KindIncrement = "increment"
	KindDecrement = "decrement"
)

// Counter bundles the counter reducer with its only action.
type Counter struct {
	Reducer *reducer.Reducer
	Change  *reducer.ActionCreator
}

// NewCounter builds a counter reducer whose state is a plain int.
func NewCounter(options ...reducer.Option) (Counter, error) {
	r, err := reducer.New(append([]reducer.Option{
		reducer.WithNamespace("counter"),
		reducer.WithInitialState(1),
	}, options...)...)
	if err != nil {
		return Counter{}, err
	}

	change, err := r.Register(
		"change",
		fsa.Compose(handleIncrement, handleDecrement)(handleSet),
		fsa.CorrelationCreatorEnhancer,
	)
	if err != nil {
		return Counter{}, err
	}

	return Counter{Reducer: r, Change: change}, nil
}

// Kind returns the extra which makes a change action increment or decrement.
func Kind(kind string) fsa.Extra {
	return fsa.Extra{Meta: fsa.Meta{MetaKind: kind}}
}

func handleSet(_ any, action fsa.Action) (any, error) {
	return action.Payload, nil
}

func handleIncrement(next reducer.Handler) reducer.Handler {
	return func(state any, action fsa.Action) (any, error) {
		if action.Meta[MetaKind] != KindIncrement {
			return next(state, action)
		}

		return toInt(state) + toInt(action.Payload), nil
	}
}

func handleDecrement(next reducer.Handler) reducer.Handler {
	return func(state any, action fsa.Action) (any, error) {
		if action.Meta[MetaKind] != KindDecrement {
			return next(state, action)
		}

		return toInt(state) - toInt(action.Payload), nil
	}
}

// toInt accepts the integer shapes a counter value can arrive in (Go literals, TOML).
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
