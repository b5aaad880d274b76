// Package reducer builds reducers following the Flux Standard Action convention.
//
// A Reducer owns a dispatch table from fully-qualified action type to Handler and
// hands out a matching ActionCreator for every registered action. Each ActionCreator
// comes with pending and error variants which shape the lifecycle flags of the
// created actions.
//
// Two ways of setting up a Reducer are supported:
//
//   - New plus imperative Register calls
//   - Create with a static Handles map, processed once at construction
//
// Register variant:
//
//	todos, err := reducer.New(
//		reducer.WithNamespace("todos"),
//		reducer.WithInitialState(map[string]any{"items": nil, "pending": false}),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	fetch, err := todos.Register("fetch", nil) // nil selects the default handle
//	if err != nil {
//		// handle error
//	}
//
//	state, err := todos.Reduce(nil, fetch.Pending(nil))                        // pending: true
//	state, err = todos.Reduce(state, fetch.Call(map[string]any{"items": items})) // merged, pending: false
//
// Handles variant:
//
//	todos, err := reducer.Create(
//		reducer.Handles{"fetch": reducer.DefaultHandle},
//		reducer.WithNamespace("todos"),
//		reducer.WithHandleEnhancer(reducer.FluxStandardActionHandleEnhancer),
//	)
//
//	fetch, _ := todos.Action("fetch")
//
// Precondition violations are returned as *InvariantError. In Production mode the
// error message is replaced by a generic one and the duplicate-registration warning
// is silenced, the checks themselves still run.
//
// A Reducer is set up by a single goroutine and is read-only afterwards; Reduce may then
// be called concurrently. Registering while dispatching is not supported.
package reducer
