package diag

import "fmt"

// Callback receives every diagnostic as it is produced, independent of the
// error also returned to the caller. A nil Callback is valid and skipped.
type Callback func(Diagnostic)

// Error is the failure result produced by Emit. It carries the diagnostic
// that was reported and an optional underlying cause.
type Error struct {
	Diagnostic Diagnostic
	Err        error
}

func (e *Error) Error() string { return e.Diagnostic.String() }

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Emit invokes the callback (when present) with the diagnostic and always
// returns an error wrapping its formatted text. Reporting does not suppress
// the error path: callers return the result regardless of the callback.
func Emit(cb Callback, d Diagnostic) error {
	return EmitCause(cb, d, nil)
}

// EmitCause is Emit with an underlying error attached for errors.Is/As
// chains.
func EmitCause(cb Callback, d Diagnostic, cause error) error {
	if cb != nil {
		cb(d)
	}
	return &Error{Diagnostic: d, Err: cause}
}

// Emitf builds the diagnostic from its parts and emits it.
func Emitf(cb Callback, sev Severity, cat Category, format string, args ...any) error {
	return Emit(cb, Diagnostic{
		Severity: sev,
		Category: cat,
		Message:  fmt.Sprintf(format, args...),
	})
}
