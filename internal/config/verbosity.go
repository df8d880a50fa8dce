package config

import "fmt"

// Verbosity controls how much diagnostic output the tool prints.
type Verbosity uint8

const (
	// VerbosityError emits only errors.
	VerbosityError Verbosity = iota
	// VerbosityWarn also emits warnings.
	VerbosityWarn
	// VerbosityInfo also emits informational messages.
	VerbosityInfo
	// VerbosityDebug also emits debug messages.
	VerbosityDebug
)

func (v Verbosity) String() string {
	switch v {
	case VerbosityError:
		return "error"
	case VerbosityWarn:
		return "warn"
	case VerbosityInfo:
		return "info"
	case VerbosityDebug:
		return "debug"
	}
	return "unknown"
}

// ParseVerbosityToken parses the QEC_VERBOSITY environment token. The
// vocabulary is closed and uppercase; anything else is a configuration
// error, not a silent fallback.
func ParseVerbosityToken(token string) (Verbosity, error) {
	switch token {
	case "ERROR":
		return VerbosityError, nil
	case "WARN":
		return VerbosityWarn, nil
	case "INFO":
		return VerbosityInfo, nil
	case "DEBUG":
		return VerbosityDebug, nil
	}
	return VerbosityWarn, fmt.Errorf(
		"QEC_VERBOSITY level unrecognized got (%s), options are ERROR, WARN, INFO, or DEBUG", token)
}

// ParseVerbosityFlag parses the --verbosity flag value (lowercase).
func ParseVerbosityFlag(value string) (Verbosity, error) {
	switch value {
	case "error":
		return VerbosityError, nil
	case "warn":
		return VerbosityWarn, nil
	case "info":
		return VerbosityInfo, nil
	case "debug":
		return VerbosityDebug, nil
	}
	return VerbosityWarn, fmt.Errorf(
		"unknown verbosity %q (expected error, warn, info, or debug)", value)
}
