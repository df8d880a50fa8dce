package diag

// Category classifies a diagnostic into one of the closed set of failure
// kinds surfaced to users and host bindings. A category carries no severity
// of its own: the same category may occur as a warning in one stage and as
// an error in another.
type Category uint16

const (
	// CatUncategorized is the fallback for failures with no better class.
	CatUncategorized Category = iota
	// CatParseFailure reports an OpenQASM 3 parse error.
	CatParseFailure
	// CatCompilerError reports an unknown internal compiler error.
	CatCompilerError
	// CatNoInput reports that no input file or string was provided.
	CatNoInput
	// CatCommunicationFailure reports a failure talking to an external
	// compilation service.
	CatCommunicationFailure
	// CatEOF reports a premature end of input.
	CatEOF
	// CatNonZeroStatus reports a non-zero exit from an external process.
	CatNonZeroStatus
	// CatSequenceTooLong reports an input sequence over the target limit.
	CatSequenceTooLong
	// CatCompilationFailure reports a generic failure during compilation.
	CatCompilationFailure
	// CatLinkerNotImplemented reports a target without argument binding.
	CatLinkerNotImplemented
	// CatSignatureWarning reports a malformed but processable signature file.
	CatSignatureWarning
	// CatSignatureError reports an unprocessable signature file.
	CatSignatureError
	// CatAddressError reports an invalid address in a signature.
	CatAddressError
	// CatSignatureNotFound reports a missing signature file.
	CatSignatureNotFound
	// CatArgumentNotFound reports a signature parameter missing from the
	// supplied arguments.
	CatArgumentNotFound
	// CatInvalidPatchType reports an invalid patch point type.
	CatInvalidPatchType
	// CatResourcesExceeded reports control system resource exhaustion.
	CatResourcesExceeded
)

// Description returns the stable human-readable text for the category. The
// wording is part of the user-visible diagnostic format and must stay
// deterministic.
func (c Category) Description() string {
	switch c {
	case CatParseFailure:
		return "OpenQASM 3 parse error"
	case CatCompilerError:
		return "Unknown compiler error"
	case CatNoInput:
		return "Error when no input file or string is provided"
	case CatCommunicationFailure:
		return "Error on compilation communication failure"
	case CatEOF:
		return "EOF Error"
	case CatNonZeroStatus:
		return "Errored because non-zero status is returned"
	case CatSequenceTooLong:
		return "Input sequence is too long"
	case CatCompilationFailure:
		return "Failure during compilation"
	case CatLinkerNotImplemented:
		return "BindArguments not implemented for target"
	case CatSignatureWarning:
		return "Signature file format is invalid but may be processed"
	case CatSignatureError:
		return "Signature file format is invalid"
	case CatAddressError:
		return "Signature address is invalid"
	case CatSignatureNotFound:
		return "Signature file not found"
	case CatArgumentNotFound:
		return "Parameter in signature not found in arguments"
	case CatInvalidPatchType:
		return "Invalid patch point type"
	case CatResourcesExceeded:
		return "Control system resources exceeded"
	case CatUncategorized:
		return "Compilation failure"
	}
	return "Compilation failure"
}
