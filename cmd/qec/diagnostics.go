package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"qec/internal/config"
	"qec/internal/diag"
)

// diagnosticPrinter renders diagnostics to a stream, filtered by the
// configured verbosity. Compilations run in parallel, so printing is
// serialized.
type diagnosticPrinter struct {
	mu  sync.Mutex
	w   io.Writer
	min diag.Severity
}

func newDiagnosticPrinter(w io.Writer, v config.Verbosity) *diagnosticPrinter {
	return &diagnosticPrinter{w: w, min: minSeverity(v)}
}

func minSeverity(v config.Verbosity) diag.Severity {
	switch v {
	case config.VerbosityError:
		return diag.SevError
	case config.VerbosityWarn:
		return diag.SevWarning
	default:
		return diag.SevInfo
	}
}

func (p *diagnosticPrinter) callback() diag.Callback {
	return p.print
}

func (p *diagnosticPrinter) print(d diag.Diagnostic) {
	if d.Severity < p.min {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	severityStyle(d.Severity).Fprintf(p.w, "%s: %s\n", d.Severity, d.Category.Description())
	fmt.Fprintln(p.w, d.Message)
}

func (p *diagnosticPrinter) printBag(bag *diag.Bag) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		p.print(d)
	}
}

func severityStyle(s diag.Severity) *color.Color {
	switch s {
	case diag.SevFatal, diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
