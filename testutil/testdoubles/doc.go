// Package testdoubles provides test doubles (spies) for the reducer's Logger interface.
//
// LoggerSpy captures the diagnostics a Reducer emits, so tests can assert on
// registration logging and duplicate-registration warnings without touching slog's default logger.
package testdoubles
