package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// InputType identifies the kind of compiler input.
type InputType uint8

const (
	// InputUndetected means the input kind has not been resolved yet.
	InputUndetected InputType = iota
	// InputQASM is OpenQASM 3 source.
	InputQASM
	// InputMLIR is textual intermediate representation.
	InputMLIR
	// InputBytecode is serialized IR bytecode.
	InputBytecode
)

func (t InputType) String() string {
	switch t {
	case InputQASM:
		return "qasm"
	case InputMLIR:
		return "mlir"
	case InputBytecode:
		return "bytecode"
	default:
		return "undetected"
	}
}

// ParseInputType parses a -X flag value.
func ParseInputType(s string) (InputType, error) {
	switch s {
	case "qasm":
		return InputQASM, nil
	case "mlir":
		return InputMLIR, nil
	case "bytecode":
		return InputBytecode, nil
	}
	return InputUndetected, fmt.Errorf("unknown input type %q (expected qasm, mlir, or bytecode)", s)
}

// EmitAction identifies the kind of output artifact requested for a run.
type EmitAction uint8

const (
	// EmitUndetected means the action has not been resolved yet.
	EmitUndetected EmitAction = iota
	// EmitNone produces no output artifact.
	EmitNone
	// EmitAST dumps the abstract syntax tree.
	EmitAST
	// EmitASTPretty pretty-prints the abstract syntax tree.
	EmitASTPretty
	// EmitMLIR emits textual intermediate representation.
	EmitMLIR
	// EmitBytecode emits serialized IR bytecode.
	EmitBytecode
	// EmitWaveMem emits the waveform memory contents.
	EmitWaveMem
	// EmitQEM emits a quantum executable module.
	EmitQEM
	// EmitQEQEM emits a target-specific quantum executable module.
	EmitQEQEM
)

func (a EmitAction) String() string {
	switch a {
	case EmitNone:
		return "none"
	case EmitAST:
		return "ast"
	case EmitASTPretty:
		return "ast-pretty"
	case EmitMLIR:
		return "mlir"
	case EmitBytecode:
		return "bytecode"
	case EmitWaveMem:
		return "wavemem"
	case EmitQEM:
		return "qem"
	case EmitQEQEM:
		return "qe-qem"
	default:
		return "undetected"
	}
}

// ParseEmitAction parses an --emit flag value.
func ParseEmitAction(s string) (EmitAction, error) {
	switch s {
	case "none":
		return EmitNone, nil
	case "ast":
		return EmitAST, nil
	case "ast-pretty":
		return EmitASTPretty, nil
	case "mlir":
		return EmitMLIR, nil
	case "bytecode":
		return EmitBytecode, nil
	case "wavemem":
		return EmitWaveMem, nil
	case "qem":
		return EmitQEM, nil
	case "qe-qem":
		return EmitQEQEM, nil
	}
	return EmitUndetected, fmt.Errorf("unknown emit action %q", s)
}

// FileExtension is a recognized file name extension.
type FileExtension uint8

const (
	// ExtNone means no recognized extension.
	ExtNone FileExtension = iota
	// ExtAST is the .ast extension.
	ExtAST
	// ExtASTPretty is the .ast-pretty extension.
	ExtASTPretty
	// ExtQASM is the .qasm extension.
	ExtQASM
	// ExtMLIR is the .mlir extension.
	ExtMLIR
	// ExtBytecode is the .bc extension.
	ExtBytecode
	// ExtWaveMem is the .wmem extension.
	ExtWaveMem
	// ExtQEM is the .qem extension.
	ExtQEM
	// ExtQEQEM is the .qeqem extension.
	ExtQEQEM
)

func (e FileExtension) String() string {
	switch e {
	case ExtAST:
		return "ast"
	case ExtASTPretty:
		return "ast-pretty"
	case ExtQASM:
		return "qasm"
	case ExtMLIR:
		return "mlir"
	case ExtBytecode:
		return "bc"
	case ExtWaveMem:
		return "wmem"
	case ExtQEM:
		return "qem"
	case ExtQEQEM:
		return "qeqem"
	default:
		return "none"
	}
}

// ParseExtension maps an extension string (without the dot) to its
// FileExtension. Unrecognized strings map to ExtNone.
func ParseExtension(s string) FileExtension {
	switch strings.ToLower(s) {
	case "ast":
		return ExtAST
	case "ast-pretty":
		return ExtASTPretty
	case "qasm":
		return ExtQASM
	case "mlir":
		return ExtMLIR
	case "bc":
		return ExtBytecode
	case "wmem":
		return ExtWaveMem
	case "qem":
		return ExtQEM
	case "qeqem":
		return ExtQEQEM
	}
	return ExtNone
}

// ExtensionOf extracts and parses the extension of a file name.
func ExtensionOf(filename string) FileExtension {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ExtNone
	}
	return ParseExtension(strings.TrimPrefix(ext, "."))
}

// InputTypeFor maps a recognized extension to the input kind it implies.
func InputTypeFor(ext FileExtension) InputType {
	switch ext {
	case ExtQASM:
		return InputQASM
	case ExtMLIR:
		return InputMLIR
	case ExtBytecode:
		return InputBytecode
	default:
		return InputUndetected
	}
}

// ExtensionFor is the inverse of InputTypeFor, used for diagnostics and
// defaulted file names.
func ExtensionFor(t InputType) FileExtension {
	switch t {
	case InputQASM:
		return ExtQASM
	case InputMLIR:
		return ExtMLIR
	case InputBytecode:
		return ExtBytecode
	default:
		return ExtNone
	}
}

// ExtensionForAction is the inverse of ActionFor, used when deriving output
// file names.
func ExtensionForAction(a EmitAction) FileExtension {
	switch a {
	case EmitAST:
		return ExtAST
	case EmitASTPretty:
		return ExtASTPretty
	case EmitMLIR:
		return ExtMLIR
	case EmitBytecode:
		return ExtBytecode
	case EmitWaveMem:
		return ExtWaveMem
	case EmitQEM:
		return ExtQEM
	case EmitQEQEM:
		return ExtQEQEM
	default:
		return ExtNone
	}
}

// ActionFor maps an extension to the emit action it implies.
func ActionFor(ext FileExtension) EmitAction {
	switch ext {
	case ExtAST:
		return EmitAST
	case ExtASTPretty:
		return EmitASTPretty
	case ExtMLIR:
		return EmitMLIR
	case ExtBytecode:
		return EmitBytecode
	case ExtWaveMem:
		return EmitWaveMem
	case ExtQEM:
		return EmitQEM
	case ExtQEQEM:
		return EmitQEQEM
	default:
		return EmitUndetected
	}
}
