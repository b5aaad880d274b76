package reducer_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/re-reducer-go/fsa"
	"github.com/AntonStoeckl/re-reducer-go/reducer"
	"github.com/AntonStoeckl/re-reducer-go/testutil/testdoubles"
)

// assertSameObject asserts both states are the very same map, not just equal ones.
func assertSameObject(t *testing.T, expected, actual any) {
	t.Helper()

	require.IsType(t, map[string]any{}, expected)
	require.IsType(t, map[string]any{}, actual)
	assert.Equal(t, reflect.ValueOf(expected).Pointer(), reflect.ValueOf(actual).Pointer())
}

func newReducer(t *testing.T, options ...reducer.Option) (*reducer.Reducer, *testdoubles.LoggerSpy) {
	t.Helper()

	logger := testdoubles.NewLoggerSpy()
	r, err := reducer.New(append([]reducer.Option{reducer.WithLogger(logger)}, options...)...)
	require.NoError(t, err)

	return r, logger
}

func register(t *testing.T, r *reducer.Reducer, name string, handle reducer.Handler, enhancers ...fsa.CreatorEnhancer) *reducer.ActionCreator {
	t.Helper()

	creator, err := r.Register(name, handle, enhancers...)
	require.NoError(t, err)

	return creator
}

func handleReplace(_ any, action fsa.Action) (any, error) {
	return action.Payload, nil
}

func handleKeep(state any, _ fsa.Action) (any, error) {
	return state, nil
}

func withTrace(mark string) fsa.CreatorEnhancer {
	return func(next fsa.Creator) fsa.Creator {
		return func(payload any, extra fsa.Extra) fsa.Action {
			meta := fsa.Meta{}
			for k, v := range extra.Meta {
				meta[k] = v
			}

			trace, _ := meta["trace"].(string)
			meta["trace"] = trace + mark

			return next(payload, fsa.Extra{Error: extra.Error, Meta: meta})
		}
	}
}

func nilCreatorEnhancer(fsa.Creator) fsa.Creator {
	return nil
}
