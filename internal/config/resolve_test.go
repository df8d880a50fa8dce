package config

import (
	"errors"
	"strings"
	"testing"

	"qec/internal/diag"
)

func TestResolveInputType_FromExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     InputType
	}{
		{"prog.qasm", InputQASM},
		{"prog.mlir", InputMLIR},
		{"prog.bc", InputBytecode},
		{"dir/nested/prog.QASM", InputQASM},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			var cfg Config
			if err := ResolveInputType(&cfg, tc.filename); err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			if cfg.GetInputType() != tc.want {
				t.Fatalf("input type = %s, want %s", cfg.GetInputType(), tc.want)
			}
		})
	}
}

func TestResolveInputType_ExplicitWins(t *testing.T) {
	cfg := Config{InputType: Some(InputMLIR)}
	if err := ResolveInputType(&cfg, "prog.qasm"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.GetInputType() != InputMLIR {
		t.Fatalf("explicit input type should win, got %s", cfg.GetInputType())
	}
}

func TestResolveInputType_BytecodeEmitShortcut(t *testing.T) {
	cfg := Config{EmitAction: Some(EmitBytecode)}
	if err := ResolveInputType(&cfg, "prog.unknowable"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.GetInputType() != InputBytecode {
		t.Fatalf("bytecode emission should imply bytecode input, got %s", cfg.GetInputType())
	}
}

func TestResolveInputType_AutodetectFailure(t *testing.T) {
	var cfg Config
	err := ResolveInputType(&cfg, "prog.xyz")
	if !errors.Is(err, ErrCannotAutodetect) {
		t.Fatalf("expected ErrCannotAutodetect, got %v", err)
	}
}

func TestResolveInputType_StdinStaysUndetected(t *testing.T) {
	var cfg Config
	if err := ResolveInputType(&cfg, StdStream); err != nil {
		t.Fatalf("stdin input must not fail autodetection: %v", err)
	}
	if cfg.GetInputType() != InputUndetected {
		t.Fatalf("input type = %s", cfg.GetInputType())
	}
}

func TestResolveEmitAction_StdoutDefaultsToMLIR(t *testing.T) {
	var cfg Config
	bag := diag.NewBag(4)
	if err := ResolveEmitAction(&cfg, StdStream, bag); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.GetEmitAction() != EmitMLIR {
		t.Fatalf("emit action = %s", cfg.GetEmitAction())
	}
	if bag.Len() != 0 {
		t.Fatalf("no warnings expected, got %d", bag.Len())
	}
}

func TestResolveEmitAction_FromExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     EmitAction
	}{
		{"out.mlir", EmitMLIR},
		{"out.qem", EmitQEM},
		{"out.qeqem", EmitQEQEM},
		{"out.bc", EmitBytecode},
		{"out.wmem", EmitWaveMem},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			var cfg Config
			bag := diag.NewBag(4)
			if err := ResolveEmitAction(&cfg, tc.filename, bag); err != nil {
				t.Fatalf("resolve failed: %v", err)
			}
			if cfg.GetEmitAction() != tc.want {
				t.Fatalf("emit action = %s, want %s", cfg.GetEmitAction(), tc.want)
			}
			if bag.Len() != 0 {
				t.Fatalf("no warnings expected, got %d", bag.Len())
			}
		})
	}
}

func TestResolveEmitAction_UnrecognizedExtensionWarnsAndDefaults(t *testing.T) {
	var cfg Config
	bag := diag.NewBag(4)
	if err := ResolveEmitAction(&cfg, "out.xyz", bag); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.GetEmitAction() != EmitMLIR {
		t.Fatalf("emit action should default to MLIR, got %s", cfg.GetEmitAction())
	}
	if bag.Len() != 1 {
		t.Fatalf("expected one warning, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != diag.SevWarning {
		t.Fatalf("severity = %s", d.Severity)
	}
	if !strings.Contains(d.Message, "defaulting to dumping MLIR") {
		t.Fatalf("unexpected warning message: %q", d.Message)
	}
}

func TestResolveEmitAction_MismatchKeepsExplicitAndWarns(t *testing.T) {
	cfg := Config{EmitAction: Some(EmitQEM)}
	bag := diag.NewBag(4)
	if err := ResolveEmitAction(&cfg, "out.mlir", bag); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.GetEmitAction() != EmitQEM {
		t.Fatalf("explicit emit action should win, got %s", cfg.GetEmitAction())
	}
	if bag.Len() != 1 || bag.Items()[0].Severity != diag.SevWarning {
		t.Fatalf("expected one mismatch warning, got %v", bag.Items())
	}
}
