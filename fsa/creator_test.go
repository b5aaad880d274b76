package fsa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
)

func Test_DefaultActionType(t *testing.T) {
	tests := []struct {
		name      string
		action    string
		namespace string
		expected  string
	}{
		{name: "without namespace", action: "fetch", namespace: "", expected: "fetch"},
		{name: "with namespace", action: "fetch", namespace: "todos", expected: "todos/fetch"},
		{name: "nested namespace", action: "fetch", namespace: "app/todos", expected: "app/todos/fetch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fsa.DefaultActionType(tt.action, tt.namespace))
		})
	}
}

func Test_DefaultCreatorFactory_BuildsActionFromPayloadAndExtra(t *testing.T) {
	create := fsa.DefaultCreatorFactory("test")

	assert.Equal(t, fsa.Action{Type: "test"}, create(nil, fsa.Extra{}))
	assert.Equal(t, fsa.Action{Type: "test", Payload: true}, create(true, fsa.Extra{}))
	assert.Equal(
		t,
		fsa.Action{Type: "test", Payload: true, Meta: fsa.Meta{"test": true}},
		create(true, fsa.Extra{Meta: fsa.Meta{"test": true}}),
	)
	assert.Equal(
		t,
		fsa.Action{Type: "test", Payload: "boom", Error: true},
		create("boom", fsa.Extra{Error: true}),
	)
}

func Test_PendingCreatorEnhancer(t *testing.T) {
	pending := fsa.PendingCreatorEnhancer(fsa.DefaultCreatorFactory("test"))
	require.NotNil(t, pending)

	t.Run("sets meta pending", func(t *testing.T) {
		action := pending("payload", fsa.Extra{})

		assert.Equal(t, "test", action.Type)
		assert.Equal(t, "payload", action.Payload)
		assert.True(t, action.IsPending())
		assert.False(t, action.Error)
	})

	t.Run("keeps other extra fields", func(t *testing.T) {
		extraMeta := fsa.Meta{"source": "ui"}
		action := pending(nil, fsa.Extra{Error: true, Meta: extraMeta})

		assert.Equal(t, fsa.Meta{"source": "ui", fsa.MetaPending: true}, action.Meta)
		assert.True(t, action.Error)
		assert.Equal(t, fsa.Meta{"source": "ui"}, extraMeta, "caller meta must not be modified")
	})

	t.Run("nil next yields nil", func(t *testing.T) {
		assert.Nil(t, fsa.PendingCreatorEnhancer(nil))
	})
}

func Test_ErrorCreatorEnhancer(t *testing.T) {
	failed := fsa.ErrorCreatorEnhancer(fsa.DefaultCreatorFactory("test"))
	require.NotNil(t, failed)

	action := failed("boom", fsa.Extra{Meta: fsa.Meta{"source": "api"}})

	assert.Equal(t, fsa.Action{Type: "test", Payload: "boom", Error: true, Meta: fsa.Meta{"source": "api"}}, action)
	assert.Nil(t, fsa.ErrorCreatorEnhancer(nil))
}

func Test_CorrelationCreatorEnhancer(t *testing.T) {
	correlated := fsa.CorrelationCreatorEnhancer(fsa.DefaultCreatorFactory("test"))
	require.NotNil(t, correlated)

	t.Run("stamps a fresh id", func(t *testing.T) {
		first := correlated(nil, fsa.Extra{})
		second := correlated(nil, fsa.Extra{})

		assert.NotEmpty(t, first.Meta[fsa.MetaCorrelationID])
		assert.NotEqual(t, first.Meta[fsa.MetaCorrelationID], second.Meta[fsa.MetaCorrelationID])
	})

	t.Run("keeps an existing id", func(t *testing.T) {
		action := correlated(nil, fsa.Extra{Meta: fsa.Meta{fsa.MetaCorrelationID: "given"}})

		assert.Equal(t, "given", action.Meta[fsa.MetaCorrelationID])
	})

	t.Run("composes with the pending enhancer", func(t *testing.T) {
		action := fsa.PendingCreatorEnhancer(correlated)(nil, fsa.Extra{})

		assert.True(t, action.IsPending())
		assert.NotEmpty(t, action.Meta[fsa.MetaCorrelationID])
	})
}

func Test_Compose(t *testing.T) {
	double := func(x int) int { return x * 2 }
	increment := func(x int) int { return x + 1 }

	assert.Equal(t, 7, fsa.Compose(double, increment)(3), "compose(f, g)(x) == f(g(x))")
	assert.Equal(t, 8, fsa.Compose(increment, double)(3))
	assert.Equal(t, 3, fsa.Compose[int, func(int) int]()(3))
}

func Test_Compose_CreatorEnhancers(t *testing.T) {
	enhance := fsa.Compose(fsa.PendingCreatorEnhancer, fsa.ErrorCreatorEnhancer)

	action := enhance(fsa.DefaultCreatorFactory("test"))(nil, fsa.Extra{})

	assert.True(t, action.Error)
	assert.True(t, action.IsPending())
}

func Test_MergeExtras(t *testing.T) {
	assert.Equal(t, fsa.Extra{}, fsa.MergeExtras())

	merged := fsa.MergeExtras(
		fsa.Extra{Meta: fsa.Meta{"a": 1, "b": 1}},
		fsa.Extra{Error: true, Meta: fsa.Meta{"b": 2}},
		fsa.Extra{},
	)

	assert.Equal(t, fsa.Extra{Error: true, Meta: fsa.Meta{"a": 1, "b": 2}}, merged)
}
