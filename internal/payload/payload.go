// Package payload defines the pluggable output container formats produced
// at the end of compilation and the registry that catalogs them.
package payload

import (
	"errors"
	"io"

	"qec/internal/plugin"
)

// Payload is one output container being assembled for a compilation run.
type Payload interface {
	// Name returns the registered format name this payload was built by.
	Name() string
	// AddFile stores a named artifact in the container. Adding the same
	// name twice is an error.
	AddFile(name string, data []byte) error
	// Write serializes the container in its binary form.
	Write(w io.Writer) error
	// WritePlain serializes the container in a human-readable form.
	WritePlain(w io.Writer) error
}

// Info is the registered descriptor for one payload format.
type Info = plugin.Info[Payload]

// ErrNoPayloadSelected is returned by the null descriptor's factory.
var ErrNoPayloadSelected = errors.New("no payload format selected")

// Registry catalogs the payload formats known to the process.
type Registry struct {
	*plugin.Registry[*Info]
}

// NewRegistry returns an empty payload registry with its null sentinel.
func NewRegistry() *Registry {
	null := plugin.NewInfo("", "null payload", func(*plugin.Configuration) (Payload, error) {
		return nil, ErrNoPayloadSelected
	})
	return &Registry{Registry: plugin.NewRegistry(null)}
}

// RegisterPayload inserts a payload format descriptor. Returns whether the
// registration succeeded alongside the error describing why not.
func (r *Registry) RegisterPayload(name, description string, factory plugin.Factory[Payload]) (bool, error) {
	if err := r.Register(plugin.NewInfo(name, description, factory)); err != nil {
		return false, err
	}
	return true, nil
}
