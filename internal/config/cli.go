package config

import (
	"github.com/spf13/pflag"

	"fortio.org/safecast"

	"qec/internal/diag"
)

// Flag names for the command-line stage.
const (
	FlagTarget           = "target"
	FlagConfig           = "config"
	FlagInputType        = "input-type"
	FlagEmit             = "emit"
	FlagVerbosity        = "verbosity"
	FlagPayload          = "payload"
	FlagAddTargetPasses  = "add-target-passes"
	FlagShowTargets      = "show-targets"
	FlagShowPayloads     = "show-payloads"
	FlagShowConfig       = "show-config"
	FlagPlaintextPayload = "plaintext-payload"
	FlagIncludeSource    = "include-source"
	FlagCompileTargetIR  = "compile-target-ir"
	FlagBypassPayload    = "bypass-payload-target-compilation"
	FlagLoadPassPlugin   = "load-pass-plugin"
	FlagLoadDialect      = "load-dialect-plugin"
	FlagMaxThreads       = "max-threads"
)

// RegisterFlags declares the compiler's configuration flags on fs. The
// defaults declared here are cosmetic (help output); the real defaults come
// from the DefaultsBuilder stage, and only flags the user actually changed
// participate in the merge.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagTarget, "", "target architecture, required for machine code generation")
	fs.String(FlagConfig, "", "path to the target configuration file, - means use the config service")
	fs.StringP(FlagInputType, "X", "", "kind of input desired (qasm, mlir, bytecode)")
	fs.String(FlagEmit, "", "kind of output desired (none, ast, ast-pretty, mlir, bytecode, wavemem, qem, qe-qem)")
	fs.String(FlagVerbosity, "warn", "verbosity level for output (error, warn, info, debug)")
	fs.String(FlagPayload, StdStream, "payload format used for module output")
	fs.Bool(FlagAddTargetPasses, true, "add target-specific passes")
	fs.Bool(FlagShowTargets, false, "print the list of registered targets")
	fs.Bool(FlagShowPayloads, false, "print the list of registered payloads")
	fs.Bool(FlagShowConfig, false, "print the loaded compiler configuration")
	fs.Bool(FlagPlaintextPayload, false, "write the payload in plaintext")
	fs.Bool(FlagIncludeSource, false, "write the input source into the payload")
	fs.Bool(FlagCompileTargetIR, false, "apply the target's IR compilation")
	fs.Bool(FlagBypassPayload, false, "bypass target compilation during payload generation")
	fs.StringArray(FlagLoadPassPlugin, nil, "load passes from a plugin library (repeatable)")
	fs.StringArray(FlagLoadDialect, nil, "load dialects from a plugin library (repeatable)")
	fs.Int(FlagMaxThreads, -1, "maximum number of compilation context threads")
}

// CLIBuilder is the command-line configuration stage. It reads a parsed
// flag set and overlays only the flags the user changed. Plugin paths are
// recorded here but loaded by a separate explicit step, so load failures
// are attributable to loading and the step can be mocked or deferred.
type CLIBuilder struct {
	Flags *pflag.FlagSet
	// Warnings collects non-fatal diagnostics produced while resolving
	// input/output kinds.
	Warnings *diag.Bag
}

// NewCLIBuilder wraps a parsed flag set.
func NewCLIBuilder(fs *pflag.FlagSet) *CLIBuilder {
	return &CLIBuilder{Flags: fs, Warnings: diag.NewBag(16)}
}

// PopulateConfig overlays the changed flags onto cfg.
func (b *CLIBuilder) PopulateConfig(cfg *Config) error {
	var overlay Config
	fs := b.Flags

	if fs.Changed(FlagTarget) {
		name, _ := fs.GetString(FlagTarget)
		if name != "" {
			overlay.TargetName = Some(name)
		}
	}
	if fs.Changed(FlagConfig) {
		path, _ := fs.GetString(FlagConfig)
		if path != "" {
			overlay.TargetConfigPath = Some(path)
		}
	}
	if fs.Changed(FlagInputType) {
		raw, _ := fs.GetString(FlagInputType)
		inputType, err := ParseInputType(raw)
		if err != nil {
			return err
		}
		overlay.InputType = Some(inputType)
	}
	if fs.Changed(FlagEmit) {
		raw, _ := fs.GetString(FlagEmit)
		action, err := ParseEmitAction(raw)
		if err != nil {
			return err
		}
		overlay.EmitAction = Some(action)
	}
	if fs.Changed(FlagVerbosity) {
		raw, _ := fs.GetString(FlagVerbosity)
		level, err := ParseVerbosityFlag(raw)
		if err != nil {
			return err
		}
		overlay.Verbosity = Some(level)
	}
	if fs.Changed(FlagPayload) {
		name, _ := fs.GetString(FlagPayload)
		overlay.PayloadName = Some(name)
	}

	boolFlags := []struct {
		name string
		dst  *Option[bool]
	}{
		{FlagAddTargetPasses, &overlay.AddTargetPasses},
		{FlagShowTargets, &overlay.ShowTargets},
		{FlagShowPayloads, &overlay.ShowPayloads},
		{FlagShowConfig, &overlay.ShowConfig},
		{FlagPlaintextPayload, &overlay.PlaintextPayload},
		{FlagIncludeSource, &overlay.IncludeSource},
		{FlagCompileTargetIR, &overlay.CompileTargetIR},
		{FlagBypassPayload, &overlay.BypassPayloadTargetCompilation},
	}
	for _, bf := range boolFlags {
		if fs.Changed(bf.name) {
			value, _ := fs.GetBool(bf.name)
			*bf.dst = Some(value)
		}
	}

	if fs.Changed(FlagLoadPassPlugin) {
		paths, _ := fs.GetStringArray(FlagLoadPassPlugin)
		overlay.PassPlugins = append(overlay.PassPlugins, paths...)
	}
	if fs.Changed(FlagLoadDialect) {
		paths, _ := fs.GetStringArray(FlagLoadDialect)
		overlay.DialectPlugins = append(overlay.DialectPlugins, paths...)
	}

	if fs.Changed(FlagMaxThreads) {
		n, _ := fs.GetInt(FlagMaxThreads)
		if n > 0 {
			threads, err := safecast.Conv[uint](n)
			if err != nil {
				return err
			}
			overlay.MaxThreads = Some(threads)
		}
	}

	*cfg = Merge(*cfg, overlay)
	return nil
}

// PopulateConfigWithFiles is the second entry point: it layers the flags and
// then resolves the input kind and emit action once the true file names are
// known.
func (b *CLIBuilder) PopulateConfigWithFiles(cfg *Config, inputFilename, outputFilename string) error {
	if err := b.PopulateConfig(cfg); err != nil {
		return err
	}
	if err := ResolveInputType(cfg, inputFilename); err != nil {
		return err
	}
	return ResolveEmitAction(cfg, outputFilename, b.Warnings)
}
