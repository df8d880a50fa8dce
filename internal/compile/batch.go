package compile

import (
	"context"
	"runtime"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"qec/internal/config"
	"qec/internal/diag"
)

// CompileAll runs one compilation per input in parallel. The base request
// supplies everything but the per-input paths; each run resolves its own
// input type and emit action and opens its own session. Worker count is
// jobs, capped by the configured thread limit when one is set.
func CompileAll(ctx context.Context, base *Request, inputs []string, jobs int) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if threads, ok := base.Config.GetMaxThreads(); ok && threads > 0 {
		if limit, err := safecast.Conv[int](threads); err == nil && limit < jobs {
			jobs = limit
		}
	}

	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			req := *base
			req.InputPath = input
			req.Config = base.Config
			if len(inputs) > 1 {
				req.OutputPath = deriveOutputPath(input, base.Config.GetEmitAction())
			}

			bag := diag.NewBag(16)
			if err := config.ResolveInputType(&req.Config, input); err != nil {
				forward(req.OnDiagnostic, bag)
				results[i] = Result{InputPath: input, Timings: &Timings{}}
				return diag.EmitCause(req.OnDiagnostic, diag.Diagnostic{
					Severity: diag.SevError,
					Category: diag.CatNoInput,
					Message:  input + ": " + err.Error(),
				}, err)
			}
			if err := config.ResolveEmitAction(&req.Config, req.OutputPath, bag); err != nil {
				forward(req.OnDiagnostic, bag)
				return err
			}
			forward(req.OnDiagnostic, bag)

			result, err := Compile(gctx, &req)
			results[i] = result
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// deriveOutputPath replaces the input's extension with the one the emit
// action implies. Actions without an artifact keep the stdout sentinel.
func deriveOutputPath(input string, action config.EmitAction) string {
	ext := config.ExtensionForAction(action)
	if ext == config.ExtNone {
		return config.StdStream
	}
	base := strings.TrimSuffix(input, "."+config.ExtensionOf(input).String())
	if config.ExtensionOf(input) == config.ExtNone {
		base = input
	}
	return base + "." + ext.String()
}

func forward(cb diag.Callback, bag *diag.Bag) {
	if cb == nil {
		return
	}
	for _, d := range bag.Items() {
		cb(d)
	}
}
