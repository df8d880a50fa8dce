package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for recoverable problems that do not halt a stage.
	SevWarning
	// SevError is for failures that abort the current stage.
	SevError
	// SevFatal is for failures the process cannot continue past.
	SevFatal
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "Info"
	case SevWarning:
		return "Warning"
	case SevError:
		return "Error"
	case SevFatal:
		return "Fatal"
	}
	return "Unknown"
}
