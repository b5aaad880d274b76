package fsa

// Compose chains wrapping functions right-to-left: Compose(f, g)(x) == f(g(x)).
// Without functions it returns the identity.
func Compose[T any, F ~func(T) T](fns ...F) func(T) T {
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}

		return x
	}
}
