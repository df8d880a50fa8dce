// Package hal catalogs the pluggable target systems: the backends that know
// how to compile intermediate representation into hardware-specific form for
// one control-system architecture. The IR itself and the pass engine are
// external collaborators; targets consume them as opaque module bytes.
package hal

import (
	"context"

	"qec/internal/payload"
)

// TargetSystem is one registered control-system backend bound to a
// compilation session.
type TargetSystem interface {
	// Name returns the target's registered name.
	Name() string
	// ResourcePath returns the target's on-disk resource directory.
	ResourcePath() string
	// CompileIR applies the target's IR compilation to the module.
	CompileIR(ctx context.Context, module []byte) ([]byte, error)
	// AddToPayload fills the payload with the target's artifacts for the
	// compiled module.
	AddToPayload(ctx context.Context, module []byte, p payload.Payload) error
}
