// Package resources resolves the on-disk layout for per-plugin resource
// files: <root>/<kind>s/<plugin-name>/.
package resources

import (
	"os"
	"path/filepath"
)

// EnvResources overrides the compiled-in resources root.
const EnvResources = "QEC_RESOURCES"

// installPrefix is the compiled-in install path, overridable at build time
// via -ldflags.
var installPrefix = "/usr/local/share/qec"

// Root returns the resources root directory.
func Root() string {
	if dir := os.Getenv(EnvResources); dir != "" {
		return dir
	}
	return installPrefix
}

// Dir returns the resource directory for one plugin of the given kind,
// e.g. Dir("target", "mock") -> <root>/targets/mock.
func Dir(kind, name string) string {
	return filepath.Join(Root(), kind+"s", name)
}

// TargetDir returns the resource directory for a target system.
func TargetDir(name string) string { return Dir("target", name) }

// PayloadDir returns the resource directory for a payload format.
func PayloadDir(name string) string { return Dir("payload", name) }
