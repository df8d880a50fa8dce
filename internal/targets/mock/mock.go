// Package mock implements a software-only target system used for tests and
// for exercising the full compilation flow without control-system hardware.
package mock

import (
	"context"
	"fmt"
	"path/filepath"

	"qec/internal/hal"
	"qec/internal/payload"
	"qec/internal/plugin"
	"qec/internal/resources"
)

const (
	// TargetName is the registered name of the mock target.
	TargetName = "mock"

	defaultNumQubits = 2
)

// Target is a mock control system with a configurable number of qubits.
type Target struct {
	numQubits int
}

// New builds a mock target from an optional configuration table. The only
// recognized key is num-qubits. Without an explicit configuration the target
// falls back to target.toml in its resource directory, then to the built-in
// default.
func New(cfg *plugin.Configuration) (*Target, error) {
	qubits := defaultNumQubits
	if n, ok := resourceQubitCount(); ok {
		qubits = n
	}
	if n, ok := cfg.Int("num-qubits"); ok {
		if n <= 0 {
			return nil, fmt.Errorf("mock target: num-qubits must be positive, got %d", n)
		}
		qubits = n
	}
	return &Target{numQubits: qubits}, nil
}

func resourceQubitCount() (int, bool) {
	path := filepath.Join(resources.TargetDir(TargetName), "target.toml")
	cfg, err := plugin.LoadConfiguration(path)
	if err != nil {
		return 0, false
	}
	n, ok := cfg.Int("num-qubits")
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

func (t *Target) Name() string         { return TargetName }
func (t *Target) ResourcePath() string { return resources.TargetDir(TargetName) }

// NumQubits returns the configured qubit count.
func (t *Target) NumQubits() int { return t.numQubits }

// CompileIR is a passthrough: the mock target has no hardware lowering.
func (t *Target) CompileIR(_ context.Context, module []byte) ([]byte, error) {
	return module, nil
}

// AddToPayload emits one placeholder program per qubit plus a controller
// image, mirroring the artifact layout a real control system produces.
func (t *Target) AddToPayload(_ context.Context, module []byte, p payload.Payload) error {
	if err := p.AddFile("controller/sequence.bin", module); err != nil {
		return err
	}
	for q := 0; q < t.numQubits; q++ {
		name := fmt.Sprintf("drive/qubit_%d.bin", q)
		if err := p.AddFile(name, []byte{0x00}); err != nil {
			return err
		}
	}
	return nil
}

// Register inserts the mock target descriptor into the registry. Part of
// the explicit startup call list.
func Register(r *hal.Registry) error {
	_, err := r.RegisterTarget(TargetName, "Mock target system for testing the compiler flow",
		func(cfg *plugin.Configuration) (hal.TargetSystem, error) { return New(cfg) },
		registerPasses, registerPassPipelines)
	return err
}

func registerPasses() error { return nil }

func registerPassPipelines() error { return nil }
