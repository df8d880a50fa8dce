package mock

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"qec/internal/plugin"
	"qec/internal/resources"
)

type recordingPayload struct {
	files map[string][]byte
}

func newRecordingPayload() *recordingPayload {
	return &recordingPayload{files: make(map[string][]byte)}
}

func (p *recordingPayload) Name() string { return "recording" }

func (p *recordingPayload) AddFile(name string, data []byte) error {
	if _, exists := p.files[name]; exists {
		return fmt.Errorf("duplicate %q", name)
	}
	p.files[name] = data
	return nil
}

func (p *recordingPayload) Write(io.Writer) error      { return nil }
func (p *recordingPayload) WritePlain(io.Writer) error { return nil }

func TestNew_Defaults(t *testing.T) {
	t.Setenv(resources.EnvResources, t.TempDir())
	target, err := New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if target.NumQubits() != defaultNumQubits {
		t.Fatalf("num qubits = %d", target.NumQubits())
	}
	if target.Name() != TargetName {
		t.Fatalf("name = %q", target.Name())
	}
}

func TestNew_ReadsQubitCount(t *testing.T) {
	target, err := New(&plugin.Configuration{Table: map[string]any{"num-qubits": int64(5)}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if target.NumQubits() != 5 {
		t.Fatalf("num qubits = %d", target.NumQubits())
	}
}

func TestNew_RejectsNonPositiveQubitCount(t *testing.T) {
	if _, err := New(&plugin.Configuration{Table: map[string]any{"num-qubits": int64(0)}}); err == nil {
		t.Fatalf("zero qubits should be rejected")
	}
	if _, err := New(&plugin.Configuration{Table: map[string]any{"num-qubits": int64(-1)}}); err == nil {
		t.Fatalf("negative qubits should be rejected")
	}
}

func TestNew_ReadsResourceDefaults(t *testing.T) {
	root := t.TempDir()
	t.Setenv(resources.EnvResources, root)
	dir := filepath.Join(root, "targets", TargetName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "target.toml"), []byte("num-qubits = 7\n"), 0o644); err != nil {
		t.Fatalf("writing resource file: %v", err)
	}

	target, err := New(nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if target.NumQubits() != 7 {
		t.Fatalf("num qubits = %d", target.NumQubits())
	}

	// An explicit configuration still wins over the resource file.
	target, err = New(&plugin.Configuration{Table: map[string]any{"num-qubits": int64(2)}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if target.NumQubits() != 2 {
		t.Fatalf("num qubits = %d", target.NumQubits())
	}
}

func TestCompileIR_Passthrough(t *testing.T) {
	target, _ := New(nil)
	module := []byte("module {}")
	out, err := target.CompileIR(context.Background(), module)
	if err != nil {
		t.Fatalf("compile IR: %v", err)
	}
	if !bytes.Equal(out, module) {
		t.Fatalf("mock target should pass IR through, got %q", out)
	}
}

func TestAddToPayload_EmitsControllerAndQubitPrograms(t *testing.T) {
	target, err := New(&plugin.Configuration{Table: map[string]any{"num-qubits": int64(3)}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p := newRecordingPayload()
	module := []byte("compiled")

	if err := target.AddToPayload(context.Background(), module, p); err != nil {
		t.Fatalf("add to payload: %v", err)
	}

	if !bytes.Equal(p.files["controller/sequence.bin"], module) {
		t.Fatalf("controller image = %v", p.files["controller/sequence.bin"])
	}
	for q := 0; q < 3; q++ {
		name := fmt.Sprintf("drive/qubit_%d.bin", q)
		if _, ok := p.files[name]; !ok {
			t.Fatalf("missing %s (files: %v)", name, len(p.files))
		}
	}
	if len(p.files) != 4 {
		t.Fatalf("file count = %d", len(p.files))
	}
}
