package config

import (
	"errors"
	"fmt"

	"qec/internal/diag"
)

// StdStream is the file name sentinel for standard input/output.
const StdStream = "-"

// ErrCannotAutodetect is returned when the input kind cannot be derived.
var ErrCannotAutodetect = errors.New(
	"unable to autodetect file extension type, please specify the input type with -X")

// ResolveInputType fixes the input kind for the given input file name.
// An explicitly configured kind wins. Requesting bytecode emission implies
// bytecode input: bytecode is self-describing to the parser, so the shortcut
// is safe in that one direction only.
func ResolveInputType(cfg *Config, inputFilename string) error {
	if cfg.GetInputType() != InputUndetected {
		return nil
	}
	if cfg.GetEmitAction() == EmitBytecode {
		cfg.InputType = Some(InputBytecode)
	} else {
		cfg.InputType = Some(InputTypeFor(ExtensionOf(inputFilename)))
	}
	if inputFilename != StdStream && cfg.GetInputType() == InputUndetected {
		return ErrCannotAutodetect
	}
	return nil
}

// ResolveEmitAction fixes the output action for the given output file name.
// Non-fatal mismatches are reported into bag as warnings and never abort
// resolution.
func ResolveEmitAction(cfg *Config, outputFilename string, bag *diag.Bag) error {
	if bag == nil {
		bag = diag.NewBag(4)
	}
	if outputFilename == StdStream {
		if cfg.GetEmitAction() == EmitUndetected {
			cfg.EmitAction = Some(EmitMLIR)
		}
		return nil
	}

	extensionAction := ActionFor(ExtensionOf(outputFilename))
	switch {
	case extensionAction == EmitUndetected && cfg.GetEmitAction() == EmitUndetected:
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Category: diag.CatUncategorized,
			Message: fmt.Sprintf(
				"cannot determine the file extension of the specified output file %s, defaulting to dumping MLIR",
				outputFilename),
		})
		cfg.EmitAction = Some(EmitMLIR)
	case cfg.GetEmitAction() == EmitUndetected:
		cfg.EmitAction = Some(extensionAction)
	case extensionAction != cfg.GetEmitAction():
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Category: diag.CatUncategorized,
			Message:  "the output type in the file extension doesn't match the output type specified by --emit",
		})
	}
	return nil
}
