package reducer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
	"github.com/AntonStoeckl/re-reducer-go/reducer"
	"github.com/AntonStoeckl/re-reducer-go/testutil/testdoubles"
)

func Test_Create_RegistersEveryHandle(t *testing.T) {
	r, err := reducer.Create(
		reducer.Handles{
			"set":     nil,
			"replace": handleReplace,
		},
		reducer.WithNamespace("app"),
		reducer.WithActionEnhancer(withTrace("e")),
		reducer.WithLogger(testdoubles.NewLoggerSpy()),
	)
	require.NoError(t, err)

	assert.Equal(t, "app", r.Namespace())
	assert.Len(t, r.Handles(), 2)
	assert.Contains(t, r.Handles(), "app/set")
	assert.Contains(t, r.Handles(), "app/replace")

	actions := r.Actions()
	require.Len(t, actions, 2)

	replace := actions["replace"]
	assert.Equal(t, "replace", replace.Type)
	assert.Equal(t, "app/replace", replace.ActionType)
	assert.Equal(t, "e", replace.Call(nil).Meta["trace"], "enhanced creators keep their metadata")
	assert.Equal(t, "e", replace.Pending(nil).Meta["trace"])

	state, err := r.Reduce(nil, replace.Call(7))
	require.NoError(t, err)
	assert.Equal(t, 7, state)

	_, ok := r.Action("missing")
	assert.False(t, ok)
}

func Test_Create_HandleEnhancerWrapsEveryHandle(t *testing.T) {
	var seen []string
	audit := func(next reducer.Handler) reducer.Handler {
		return func(state any, action fsa.Action) (any, error) {
			seen = append(seen, action.Type)
			return next(state, action)
		}
	}

	r, err := reducer.Create(
		reducer.Handles{"a": nil, "b": nil},
		reducer.WithHandleEnhancer(audit),
		reducer.WithLogger(testdoubles.NewLoggerSpy()),
	)
	require.NoError(t, err)

	a, _ := r.Action("a")
	b, _ := r.Action("b")

	_, err = r.Fold(nil, a.Call(nil), b.Call(nil), fsa.Action{Type: "c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, seen)
}

func Test_Create_ErrorCases(t *testing.T) {
	_, err := reducer.Create(reducer.Handles{"": nil}, reducer.WithLogger(testdoubles.NewLoggerSpy()))
	assert.ErrorIs(t, err, reducer.ErrEmptyActionName)

	_, err = reducer.Create(reducer.Handles{"a": nil}, reducer.WithCreatorFactory(nil))
	assert.ErrorIs(t, err, reducer.ErrNilCreatorFactory)
}
