// Package config implements the layered compiler configuration record. A
// Config is assembled once per compilation session by running builder stages
// in a fixed precedence order (defaults, environment, command line) and is
// treated as read-only afterwards. The owner of the record must keep it
// alive for as long as any context binding refers to it.
package config

import (
	"fmt"
	"io"
)

// Config is the flat set of options steering one compilation session. Every
// field is independently unset or set; unset fields fall back to the
// documented default at the accessor level.
type Config struct {
	// TargetName selects the target system plugin to compile for.
	TargetName Option[string]
	// TargetConfigPath locates the target's configuration file.
	TargetConfigPath Option[string]
	// InputType is the resolved input kind.
	InputType Option[InputType]
	// EmitAction is the resolved output kind.
	EmitAction Option[EmitAction]
	// Verbosity is the diagnostic output level.
	Verbosity Option[Verbosity]
	// PayloadName selects the payload plugin used for module output.
	PayloadName Option[string]

	// AddTargetPasses registers target-specific passes with the compiler.
	AddTargetPasses Option[bool]
	// ShowTargets prints the registered target systems.
	ShowTargets Option[bool]
	// ShowPayloads prints the registered payload formats.
	ShowPayloads Option[bool]
	// ShowConfig prints the resolved configuration.
	ShowConfig Option[bool]
	// PlaintextPayload writes the payload in plaintext instead of binary.
	PlaintextPayload Option[bool]
	// IncludeSource writes the input source into the payload.
	IncludeSource Option[bool]
	// CompileTargetIR applies the target's IR compilation.
	CompileTargetIR Option[bool]
	// BypassPayloadTargetCompilation skips target compilation during
	// payload generation.
	BypassPayloadTargetCompilation Option[bool]

	// PassPlugins are dynamic pass plugin paths, in parse order.
	PassPlugins []string
	// DialectPlugins are dynamic dialect plugin paths, in parse order.
	DialectPlugins []string

	// MaxThreads caps the number of compilation context threads.
	MaxThreads Option[uint]
}

// Merge overlays overlay on top of base and returns the result. Scalar
// fields take the overlay's value only when it is set; list fields append.
// Merge is pure: neither argument is modified.
func Merge(base, overlay Config) Config {
	out := Config{
		TargetName:       pick(base.TargetName, overlay.TargetName),
		TargetConfigPath: pick(base.TargetConfigPath, overlay.TargetConfigPath),
		InputType:        pick(base.InputType, overlay.InputType),
		EmitAction:       pick(base.EmitAction, overlay.EmitAction),
		Verbosity:        pick(base.Verbosity, overlay.Verbosity),
		PayloadName:      pick(base.PayloadName, overlay.PayloadName),

		AddTargetPasses:                pick(base.AddTargetPasses, overlay.AddTargetPasses),
		ShowTargets:                    pick(base.ShowTargets, overlay.ShowTargets),
		ShowPayloads:                   pick(base.ShowPayloads, overlay.ShowPayloads),
		ShowConfig:                     pick(base.ShowConfig, overlay.ShowConfig),
		PlaintextPayload:               pick(base.PlaintextPayload, overlay.PlaintextPayload),
		IncludeSource:                  pick(base.IncludeSource, overlay.IncludeSource),
		CompileTargetIR:                pick(base.CompileTargetIR, overlay.CompileTargetIR),
		BypassPayloadTargetCompilation: pick(base.BypassPayloadTargetCompilation, overlay.BypassPayloadTargetCompilation),

		MaxThreads: pick(base.MaxThreads, overlay.MaxThreads),
	}
	out.PassPlugins = append(append([]string(nil), base.PassPlugins...), overlay.PassPlugins...)
	out.DialectPlugins = append(append([]string(nil), base.DialectPlugins...), overlay.DialectPlugins...)
	return out
}

// Accessors with documented defaults.

func (c *Config) GetTargetName() (string, bool)       { return c.TargetName.Get() }
func (c *Config) GetTargetConfigPath() (string, bool) { return c.TargetConfigPath.Get() }
func (c *Config) GetInputType() InputType             { return c.InputType.Or(InputUndetected) }
func (c *Config) GetEmitAction() EmitAction           { return c.EmitAction.Or(EmitUndetected) }
func (c *Config) GetVerbosity() Verbosity             { return c.Verbosity.Or(VerbosityWarn) }
func (c *Config) GetPayloadName() string              { return c.PayloadName.Or("-") }
func (c *Config) GetMaxThreads() (uint, bool)         { return c.MaxThreads.Get() }

func (c *Config) ShouldAddTargetPasses() bool      { return c.AddTargetPasses.Or(true) }
func (c *Config) ShouldShowTargets() bool          { return c.ShowTargets.Or(false) }
func (c *Config) ShouldShowPayloads() bool         { return c.ShowPayloads.Or(false) }
func (c *Config) ShouldShowConfig() bool           { return c.ShowConfig.Or(false) }
func (c *Config) ShouldEmitPlaintextPayload() bool { return c.PlaintextPayload.Or(false) }
func (c *Config) ShouldIncludeSource() bool        { return c.IncludeSource.Or(false) }
func (c *Config) ShouldCompileTargetIR() bool      { return c.CompileTargetIR.Or(false) }
func (c *Config) ShouldBypassPayloadTargetCompilation() bool {
	return c.BypassPayloadTargetCompilation.Or(false)
}

// Print renders the resolved configuration for --show-config.
func (c *Config) Print(w io.Writer) {
	name, _ := c.GetTargetName()
	path, _ := c.GetTargetConfigPath()
	fmt.Fprintf(w, "target-name: %s\n", name)
	fmt.Fprintf(w, "target-config-path: %s\n", path)
	fmt.Fprintf(w, "input-type: %s\n", c.GetInputType())
	fmt.Fprintf(w, "emit-action: %s\n", c.GetEmitAction())
	fmt.Fprintf(w, "verbosity: %s\n", c.GetVerbosity())
	fmt.Fprintf(w, "payload-name: %s\n", c.GetPayloadName())
	fmt.Fprintf(w, "add-target-passes: %t\n", c.ShouldAddTargetPasses())
	fmt.Fprintf(w, "plaintext-payload: %t\n", c.ShouldEmitPlaintextPayload())
	fmt.Fprintf(w, "include-source: %t\n", c.ShouldIncludeSource())
	fmt.Fprintf(w, "compile-target-ir: %t\n", c.ShouldCompileTargetIR())
	fmt.Fprintf(w, "bypass-payload-target-compilation: %t\n", c.ShouldBypassPayloadTargetCompilation())
	fmt.Fprintf(w, "pass-plugins: %v\n", c.PassPlugins)
	fmt.Fprintf(w, "dialect-plugins: %v\n", c.DialectPlugins)
	if threads, ok := c.GetMaxThreads(); ok {
		fmt.Fprintf(w, "max-threads: %d\n", threads)
	}
}
