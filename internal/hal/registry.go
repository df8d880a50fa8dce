package hal

import (
	"errors"
	"fmt"
	"sync"

	"qec/internal/plugin"
)

// PassRegistrar registers a target's passes or pass pipelines with the
// compilation engine. Registrars are one-shot: they run during startup,
// after all descriptors are registered and before any compilation.
type PassRegistrar func() error

// ErrNoTargetSelected is returned by the null descriptor's factory.
var ErrNoTargetSelected = errors.New("no target system selected")

// TargetSystemInfo groups info about a registered target: identity, factory,
// per-session instances, and the one-shot pass registration hooks.
type TargetSystemInfo struct {
	*plugin.Info[TargetSystem]

	mu            sync.Mutex
	passRegistrar PassRegistrar
	pipelines     PassRegistrar
	passesDone    bool
	pipelinesDone bool
}

// NewTargetSystemInfo constructs a target descriptor. Either registrar may
// be nil when the target contributes nothing for that hook.
func NewTargetSystemInfo(name, description string, factory plugin.Factory[TargetSystem],
	passes, pipelines PassRegistrar) *TargetSystemInfo {
	return &TargetSystemInfo{
		Info:          plugin.NewInfo(name, description, factory),
		passRegistrar: passes,
		pipelines:     pipelines,
	}
}

// RegisterTargetPasses invokes the target's pass registration hook. A second
// invocation is an error: the hooks mutate the process-wide pass catalog and
// must run exactly once.
func (i *TargetSystemInfo) RegisterTargetPasses() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.passesDone {
		return fmt.Errorf("target %q passes are already registered", i.Name())
	}
	i.passesDone = true
	if i.passRegistrar == nil {
		return nil
	}
	return i.passRegistrar()
}

// RegisterTargetPassPipelines invokes the target's pipeline registration
// hook, with the same one-shot contract as RegisterTargetPasses.
func (i *TargetSystemInfo) RegisterTargetPassPipelines() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.pipelinesDone {
		return fmt.Errorf("target %q pass pipelines are already registered", i.Name())
	}
	i.pipelinesDone = true
	if i.pipelines == nil {
		return nil
	}
	return i.pipelines()
}

// Registry catalogs the target systems known to the process.
type Registry struct {
	*plugin.Registry[*TargetSystemInfo]
}

// NewRegistry returns an empty target registry with its null sentinel.
func NewRegistry() *Registry {
	return &Registry{Registry: plugin.NewRegistry(NullTargetSystemInfo())}
}

// NullTargetSystemInfo is a descriptor whose factory always fails, used as a
// safe return value when target selection is absent.
func NullTargetSystemInfo() *TargetSystemInfo {
	return NewTargetSystemInfo("", "null target system",
		func(*plugin.Configuration) (TargetSystem, error) {
			return nil, ErrNoTargetSelected
		}, nil, nil)
}

// RegisterTarget inserts a target descriptor. Returns whether the
// registration succeeded alongside the error describing why not.
func (r *Registry) RegisterTarget(name, description string, factory plugin.Factory[TargetSystem],
	passes, pipelines PassRegistrar) (bool, error) {
	if err := r.Register(NewTargetSystemInfo(name, description, factory, passes, pipelines)); err != nil {
		return false, err
	}
	return true, nil
}

// RegisterAllPasses runs every registered target's pass and pipeline hooks.
// Intended for the startup call list, once, after registration completes.
func (r *Registry) RegisterAllPasses() error {
	for _, info := range r.All() {
		if err := info.RegisterTargetPasses(); err != nil {
			return err
		}
		if err := info.RegisterTargetPassPipelines(); err != nil {
			return err
		}
	}
	return nil
}
