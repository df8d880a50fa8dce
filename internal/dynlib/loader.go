// Package dynlib wraps the native dynamic-library loader consumed by the
// configuration layer. Parsing a plugin path and loading it are separate
// steps so load failures are attributable and the loader can be faked in
// tests.
package dynlib

import (
	"fmt"
	"plugin"

	"qec/internal/diag"
)

// Loader maps a file path to a loaded code module. Loading runs the
// module's registration hooks as a side effect.
type Loader interface {
	Load(path string) error
}

// GoPluginLoader loads shared objects through the runtime plugin package.
type GoPluginLoader struct{}

// Load opens the plugin at path.
func (GoPluginLoader) Load(path string) error {
	if _, err := plugin.Open(path); err != nil {
		return fmt.Errorf("loading plugin %s: %w", path, err)
	}
	return nil
}

// LoadAll hands each path to the loader. A failure is recorded as a warning
// and does not abort: the remaining plugins may still be usable.
func LoadAll(loader Loader, paths []string, bag *diag.Bag) {
	for _, path := range paths {
		if err := loader.Load(path); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Category: diag.CatUncategorized,
				Message:  fmt.Sprintf("failed to load plugin from '%s': %v. Request ignored.", path, err),
			})
		}
	}
}
