// Package qem implements the quantum executable module payload format: a
// named set of artifacts with a manifest, serialized either as a msgpack
// envelope or as a plaintext dump.
package qem

import (
	"fmt"
	"io"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"qec/internal/payload"
	"qec/internal/plugin"
	"qec/internal/version"
)

// FormatName is the registered name of the QEM payload format.
const FormatName = "qem"

// Manifest describes the container contents.
type Manifest struct {
	Tool    string   `msgpack:"tool"`
	Version string   `msgpack:"version"`
	Target  string   `msgpack:"target,omitempty"`
	Files   []string `msgpack:"files"`
}

// envelope is the binary on-disk form.
type envelope struct {
	Manifest Manifest          `msgpack:"manifest"`
	Files    map[string][]byte `msgpack:"files"`
}

// Payload assembles one quantum executable module.
type Payload struct {
	target string
	files  map[string][]byte
}

// New builds an empty payload. The optional configuration may carry the
// target name recorded in the manifest.
func New(cfg *plugin.Configuration) (*Payload, error) {
	p := &Payload{files: make(map[string][]byte)}
	if target, ok := cfg.String("target"); ok {
		p.target = target
	}
	return p, nil
}

func (p *Payload) Name() string { return FormatName }

// AddFile stores one artifact. Names are unique within a module.
func (p *Payload) AddFile(name string, data []byte) error {
	if _, exists := p.files[name]; exists {
		return fmt.Errorf("payload already contains %q", name)
	}
	p.files[name] = append([]byte(nil), data...)
	return nil
}

func (p *Payload) manifest() Manifest {
	names := make([]string, 0, len(p.files))
	for name := range p.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return Manifest{
		Tool:    "qec",
		Version: version.Version,
		Target:  p.target,
		Files:   names,
	}
}

// Write serializes the module as a msgpack envelope.
func (p *Payload) Write(w io.Writer) error {
	env := envelope{Manifest: p.manifest(), Files: p.files}
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&env); err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	return nil
}

// WritePlain dumps the module as deterministic, human-readable text.
func (p *Payload) WritePlain(w io.Writer) error {
	manifest := p.manifest()
	if _, err := fmt.Fprintf(w, "qem payload (target=%s, files=%d)\n", manifest.Target, len(manifest.Files)); err != nil {
		return err
	}
	for _, name := range manifest.Files {
		if _, err := fmt.Fprintf(w, "==== %s ====\n", name); err != nil {
			return err
		}
		if _, err := w.Write(p.files[name]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes a binary QEM envelope, for tooling and tests.
func Read(r io.Reader) (Manifest, map[string][]byte, error) {
	var env envelope
	if err := msgpack.NewDecoder(r).Decode(&env); err != nil {
		return Manifest{}, nil, fmt.Errorf("decoding payload: %w", err)
	}
	return env.Manifest, env.Files, nil
}

// Register inserts the QEM format descriptor into the registry. Part of the
// explicit startup call list.
func Register(r *payload.Registry) error {
	_, err := r.RegisterPayload(FormatName, "Quantum executable module container",
		func(cfg *plugin.Configuration) (payload.Payload, error) { return New(cfg) })
	return err
}
