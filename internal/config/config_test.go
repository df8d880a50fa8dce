package config

import "testing"

func TestMerge_OverlayWins(t *testing.T) {
	base := Config{
		TargetName: Some("mock"),
		Verbosity:  Some(VerbosityInfo),
		EmitAction: Some(EmitMLIR),
	}
	overlay := Config{
		TargetName: Some("backend"),
		MaxThreads: Some(uint(4)),
	}

	out := Merge(base, overlay)

	if name, _ := out.GetTargetName(); name != "backend" {
		t.Fatalf("overlay target should win, got %q", name)
	}
	if out.GetVerbosity() != VerbosityInfo {
		t.Fatalf("unset overlay field should keep base value, got %s", out.GetVerbosity())
	}
	if out.GetEmitAction() != EmitMLIR {
		t.Fatalf("unset overlay field should keep base value, got %s", out.GetEmitAction())
	}
	if threads, ok := out.GetMaxThreads(); !ok || threads != 4 {
		t.Fatalf("overlay-only field should be set, got %d (%t)", threads, ok)
	}
}

func TestMerge_IsPure(t *testing.T) {
	base := Config{TargetName: Some("a"), PassPlugins: []string{"one.so"}}
	overlay := Config{TargetName: Some("b"), PassPlugins: []string{"two.so"}}

	out := Merge(base, overlay)

	if name, _ := base.GetTargetName(); name != "a" {
		t.Fatalf("merge modified base: %q", name)
	}
	if name, _ := overlay.GetTargetName(); name != "b" {
		t.Fatalf("merge modified overlay: %q", name)
	}
	if len(out.PassPlugins) != 2 || out.PassPlugins[0] != "one.so" || out.PassPlugins[1] != "two.so" {
		t.Fatalf("list fields should append in order, got %v", out.PassPlugins)
	}
	if len(base.PassPlugins) != 1 || len(overlay.PassPlugins) != 1 {
		t.Fatalf("merge modified input lists: %v %v", base.PassPlugins, overlay.PassPlugins)
	}

	// Appending to the result must not leak into the inputs.
	out.PassPlugins = append(out.PassPlugins, "three.so")
	if len(base.PassPlugins) != 1 {
		t.Fatalf("result aliases base list: %v", base.PassPlugins)
	}
}

func TestConfig_AccessorDefaults(t *testing.T) {
	var cfg Config

	if cfg.GetVerbosity() != VerbosityWarn {
		t.Fatalf("default verbosity should be warn, got %s", cfg.GetVerbosity())
	}
	if cfg.GetPayloadName() != StdStream {
		t.Fatalf("default payload name should be %q, got %q", StdStream, cfg.GetPayloadName())
	}
	if !cfg.ShouldAddTargetPasses() {
		t.Fatalf("target passes should default to enabled")
	}
	if cfg.ShouldShowTargets() || cfg.ShouldShowPayloads() || cfg.ShouldShowConfig() {
		t.Fatalf("show flags should default to false")
	}
	if cfg.ShouldCompileTargetIR() || cfg.ShouldBypassPayloadTargetCompilation() {
		t.Fatalf("target IR flags should default to false")
	}
	if _, ok := cfg.GetTargetName(); ok {
		t.Fatalf("target name should be unset by default")
	}
	if _, ok := cfg.GetMaxThreads(); ok {
		t.Fatalf("max threads should be unset by default")
	}
}

func TestOption_SetAndGet(t *testing.T) {
	var o Option[int]
	if o.IsSet() {
		t.Fatalf("zero option should be unset")
	}
	if got := o.Or(7); got != 7 {
		t.Fatalf("Or on unset option should return default, got %d", got)
	}

	o = Some(3)
	if !o.IsSet() {
		t.Fatalf("Some should be set")
	}
	if got := o.Or(7); got != 3 {
		t.Fatalf("Or on set option should return value, got %d", got)
	}
	if v, ok := o.Get(); !ok || v != 3 {
		t.Fatalf("Get mismatch: %d %t", v, ok)
	}
}
