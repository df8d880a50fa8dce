package builtin

import (
	"testing"

	"qec/internal/hal"
	"qec/internal/payload"
)

func TestRegisterAll_RegistersCompiledInPlugins(t *testing.T) {
	targets := hal.NewRegistry()
	payloads := payload.NewRegistry()

	if err := RegisterAll(targets, payloads); err != nil {
		t.Fatalf("register all: %v", err)
	}

	if !targets.Has("mock") {
		t.Fatalf("mock target missing: %v", targets.Names())
	}
	if !payloads.Has("qem") {
		t.Fatalf("qem payload missing: %v", payloads.Names())
	}
}

func TestRegisterAll_SecondRunIsRejected(t *testing.T) {
	targets := hal.NewRegistry()
	payloads := payload.NewRegistry()

	if err := RegisterAll(targets, payloads); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := RegisterAll(targets, payloads); err == nil {
		t.Fatalf("duplicate registration should be rejected")
	}
}
