// Package compile drives one compilation from resolved configuration to a
// written artifact. It owns session lifecycle: every run opens a fresh
// session, binds the target and payload instances it needs under that
// session's handle, and tears the bindings down when the run ends.
package compile

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"qec/internal/config"
	"qec/internal/diag"
	"qec/internal/hal"
	"qec/internal/payload"
	"qec/internal/plugin"
	"qec/internal/session"
)

// defaultPayloadFormat is assembled when no payload format was selected.
const defaultPayloadFormat = "qem"

// Request carries everything one compilation run needs. Config must already
// be resolved (input type and emit action fixed).
type Request struct {
	InputPath  string
	OutputPath string
	Config     config.Config

	Targets  *hal.Registry
	Payloads *payload.Registry
	Sessions *session.Manager

	// Configs binds the active configuration record per session, so
	// concurrent runs can share one store the way plugin instances do.
	// Compile creates a private store when none is supplied. The record
	// must outlive every lookup against its binding; Compile guarantees
	// that by dropping the binding on session close.
	Configs *plugin.ContextStore[*config.Config]

	// OnDiagnostic receives every diagnostic the run produces. Optional.
	OnDiagnostic diag.Callback
	// Progress receives stage events. Optional.
	Progress ProgressSink

	// Stdin and Stdout back the "-" path sentinels; they default to the
	// process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// Result summarizes a finished run.
type Result struct {
	InputPath  string
	OutputPath string
	Timings    *Timings
}

// Compile runs one compilation end to end.
func Compile(ctx context.Context, req *Request) (Result, error) {
	result := Result{
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Timings:    &Timings{},
	}
	run := &runner{req: req, timings: result.Timings}

	sess := req.Sessions.Open()
	defer sess.Close()

	configs := req.Configs
	if configs == nil {
		configs = plugin.NewContextStore[*config.Config]()
	}
	handle := sess.Handle()
	configs.Bind(handle, &req.Config)
	sess.AddCleanup(func() { configs.Drop(handle) })
	cfg, err := configs.Lookup(handle)
	if err != nil {
		return result, err
	}
	run.cfg = cfg

	module, err := run.stage(ctx, StageRead, func() ([]byte, error) {
		return run.readInput()
	})
	if err != nil {
		return result, err
	}

	action := cfg.GetEmitAction()

	var target hal.TargetSystem
	var targetName string
	if needsTarget(cfg) {
		target, targetName, err = run.bindTarget(sess)
		if err != nil {
			return result, err
		}
	}

	if cfg.ShouldCompileTargetIR() {
		module, err = run.stage(ctx, StageTarget, func() ([]byte, error) {
			return target.CompileIR(ctx, module)
		})
		if err != nil {
			return result, err
		}
	}

	switch action {
	case config.EmitUndetected, config.EmitNone:
		return result, nil

	case config.EmitAST, config.EmitASTPretty:
		return result, diag.Emitf(req.OnDiagnostic, diag.SevError, diag.CatCompilationFailure,
			"emit action %s is only available through the OpenQASM front end", action)

	case config.EmitMLIR, config.EmitBytecode, config.EmitWaveMem:
		err = run.stage2(ctx, StageWrite, func() error {
			return run.writeOutput(func(w io.Writer) error {
				_, werr := w.Write(module)
				return werr
			})
		})
		return result, err

	case config.EmitQEM, config.EmitQEQEM:
		var p payload.Payload
		p, err = stageIn(ctx, run, StagePayload, func() (payload.Payload, error) {
			return run.assemblePayload(ctx, sess, target, targetName, module)
		})
		if err != nil {
			return result, err
		}
		err = run.stage2(ctx, StageWrite, func() error {
			return run.writeOutput(func(w io.Writer) error {
				if cfg.ShouldEmitPlaintextPayload() {
					return p.WritePlain(w)
				}
				return p.Write(w)
			})
		})
		return result, err

	default:
		return result, diag.Emitf(req.OnDiagnostic, diag.SevError, diag.CatCompilationFailure,
			"unsupported emit action %s", action)
	}
}

// needsTarget reports whether the run requires a bound target system.
func needsTarget(cfg *config.Config) bool {
	if cfg.ShouldCompileTargetIR() {
		return true
	}
	switch cfg.GetEmitAction() {
	case config.EmitQEM, config.EmitQEQEM, config.EmitWaveMem:
		return true
	}
	return false
}

type runner struct {
	req     *Request
	cfg     *config.Config
	timings *Timings
}

// stage wraps one phase with progress events, cancellation checks, and
// timing.
func stageIn[T any](ctx context.Context, run *runner, s Stage, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	run.report(s, StatusWorking)
	start := time.Now()
	out, err := fn()
	run.timings.Set(s, time.Since(start))
	if err != nil {
		run.report(s, StatusError)
		return zero, err
	}
	run.report(s, StatusDone)
	return out, nil
}

func (run *runner) stage(ctx context.Context, s Stage, fn func() ([]byte, error)) ([]byte, error) {
	return stageIn(ctx, run, s, fn)
}

func (run *runner) stage2(ctx context.Context, s Stage, fn func() error) error {
	_, err := stageIn(ctx, run, s, func() (struct{}, error) { return struct{}{}, fn() })
	return err
}

func (run *runner) report(s Stage, status Status) {
	if run.req.Progress != nil {
		run.req.Progress.OnEvent(Event{File: run.req.InputPath, Stage: s, Status: status})
	}
}

func (run *runner) readInput() ([]byte, error) {
	cb := run.req.OnDiagnostic
	switch run.req.InputPath {
	case "":
		return nil, diag.Emitf(cb, diag.SevError, diag.CatNoInput, "no input file provided")
	case config.StdStream:
		in := run.req.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, diag.EmitCause(cb, diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatNoInput,
				Message:  "reading standard input: " + err.Error(),
			}, err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(run.req.InputPath)
		if err != nil {
			return nil, diag.EmitCause(cb, diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatNoInput,
				Message:  fmt.Sprintf("reading input file %s: %v", run.req.InputPath, err),
			}, err)
		}
		return data, nil
	}
}

// bindTarget resolves the configured target descriptor, instantiates it
// under the session, and schedules the binding teardown on session close.
func (run *runner) bindTarget(sess *session.Session) (hal.TargetSystem, string, error) {
	cb := run.req.OnDiagnostic

	info := run.req.Targets.Null()
	name, selected := run.cfg.GetTargetName()
	if selected {
		found, err := run.req.Targets.Lookup(name)
		if err != nil {
			return nil, "", diag.EmitCause(cb, diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatCompilationFailure,
				Message:  fmt.Sprintf("unknown target system %q", name),
			}, err)
		}
		info = found
	}

	var cfg *plugin.Configuration
	if path, ok := run.cfg.GetTargetConfigPath(); ok && path != config.StdStream {
		loaded, err := plugin.LoadConfiguration(path)
		if err != nil {
			return nil, "", diag.EmitCause(cb, diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatCompilationFailure,
				Message:  fmt.Sprintf("loading target configuration %s: %v", path, err),
			}, err)
		}
		cfg = loaded
	}

	handle := sess.Handle()
	target, err := info.CreateInstance(handle, cfg)
	if err != nil {
		return nil, "", diag.EmitCause(cb, diag.Diagnostic{
			Severity: diag.SevError,
			Category: diag.CatCompilationFailure,
			Message:  "constructing target system: " + err.Error(),
		}, err)
	}
	sess.AddCleanup(func() { info.DropInstance(handle) })

	return target, info.Name(), nil
}

// assemblePayload instantiates the selected payload format under the session
// and fills it from the target and the configured extras.
func (run *runner) assemblePayload(ctx context.Context, sess *session.Session,
	target hal.TargetSystem, targetName string, module []byte) (payload.Payload, error) {
	cb := run.req.OnDiagnostic
	cfg := run.cfg

	formatName := cfg.GetPayloadName()
	if formatName == config.StdStream {
		formatName = defaultPayloadFormat
		if cfg.GetEmitAction() == config.EmitQEQEM && run.req.Payloads.Has(targetName) {
			formatName = targetName
		}
	}

	info, err := run.req.Payloads.Lookup(formatName)
	if err != nil {
		return nil, diag.EmitCause(cb, diag.Diagnostic{
			Severity: diag.SevError,
			Category: diag.CatCompilationFailure,
			Message:  fmt.Sprintf("unknown payload format %q", formatName),
		}, err)
	}

	handle := sess.Handle()
	p, err := info.CreateInstance(handle, &plugin.Configuration{
		Table: map[string]any{"target": targetName},
	})
	if err != nil {
		return nil, diag.EmitCause(cb, diag.Diagnostic{
			Severity: diag.SevError,
			Category: diag.CatCompilationFailure,
			Message:  "constructing payload: " + err.Error(),
		}, err)
	}
	sess.AddCleanup(func() { info.DropInstance(handle) })

	if cfg.ShouldIncludeSource() {
		name := "manifest/input." + config.ExtensionFor(cfg.GetInputType()).String()
		if err := p.AddFile(name, module); err != nil {
			return nil, diag.EmitCause(cb, diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatCompilationFailure,
				Message:  "including source in payload: " + err.Error(),
			}, err)
		}
	}

	if !cfg.ShouldBypassPayloadTargetCompilation() {
		if err := target.AddToPayload(ctx, module, p); err != nil {
			return nil, diag.EmitCause(cb, diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatCompilationFailure,
				Message:  "populating payload from target: " + err.Error(),
			}, err)
		}
	}
	return p, nil
}

// writeOutput streams the artifact to the configured destination.
func (run *runner) writeOutput(emit func(io.Writer) error) error {
	cb := run.req.OnDiagnostic

	if run.req.OutputPath == config.StdStream || run.req.OutputPath == "" {
		out := run.req.Stdout
		if out == nil {
			out = os.Stdout
		}
		if err := emit(out); err != nil {
			return diag.EmitCause(cb, diag.Diagnostic{
				Severity: diag.SevError,
				Category: diag.CatUncategorized,
				Message:  "writing output: " + err.Error(),
			}, err)
		}
		return nil
	}

	f, err := os.Create(run.req.OutputPath)
	if err != nil {
		return diag.EmitCause(cb, diag.Diagnostic{
			Severity: diag.SevError,
			Category: diag.CatUncategorized,
			Message:  fmt.Sprintf("creating output file %s: %v", run.req.OutputPath, err),
		}, err)
	}
	if err := emit(f); err != nil {
		f.Close()
		return diag.EmitCause(cb, diag.Diagnostic{
			Severity: diag.SevError,
			Category: diag.CatUncategorized,
			Message:  fmt.Sprintf("writing output file %s: %v", run.req.OutputPath, err),
		}, err)
	}
	if err := f.Close(); err != nil {
		return diag.EmitCause(cb, diag.Diagnostic{
			Severity: diag.SevError,
			Category: diag.CatUncategorized,
			Message:  fmt.Sprintf("closing output file %s: %v", run.req.OutputPath, err),
		}, err)
	}
	return nil
}
