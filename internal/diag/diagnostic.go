// Package diag implements the structured diagnostic reporting primitive
// shared by every compilation stage. A Diagnostic is immutable once built;
// reporting it is advisory and never replaces the error returned to the
// caller.
package diag

// Diagnostic is one categorized message surfaced to the user or to an
// external callback sink.
type Diagnostic struct {
	Severity Severity
	Category Category
	Message  string
}

// String renders the canonical two-line user-visible form:
// "<Severity>: <category description>\n<message>".
func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Category.Description() + "\n" + d.Message
}
