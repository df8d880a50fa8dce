// Package builtin is the explicit startup call list: every compiled-in
// plugin registers here, invoked once by the process entry point. No plugin
// registers itself through package init side effects.
package builtin

import (
	"qec/internal/hal"
	"qec/internal/payload"
	"qec/internal/payloads/qem"
	"qec/internal/targets/mock"
)

// RegisterAll registers the compiled-in targets and payload formats.
func RegisterAll(targets *hal.Registry, payloads *payload.Registry) error {
	if err := mock.Register(targets); err != nil {
		return err
	}
	if err := qem.Register(payloads); err != nil {
		return err
	}
	return nil
}
