package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"qec/internal/compile"
	"qec/internal/ui"
)

// progressDisplay selects whether compiles render the interactive progress
// view.
type progressDisplay int

const (
	displayAuto progressDisplay = iota
	displayAlways
	displayNever
)

func parseProgressDisplay(value string) (progressDisplay, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return displayAuto, nil
	case "on":
		return displayAlways, nil
	case "off":
		return displayNever, nil
	}
	return displayAuto, fmt.Errorf("--ui must be one of auto, on, off (got %q)", value)
}

// wantsProgressUI decides whether the progress view runs. The view owns
// stdout, so it never runs while the compiled artifact streams there.
func (d progressDisplay) wantsProgressUI(artifactOnStdout bool) bool {
	if artifactOnStdout {
		return false
	}
	switch d {
	case displayAlways:
		return true
	case displayNever:
		return false
	}
	return isTerminal(os.Stdout)
}

type compileOutcome struct {
	result compile.Result
	err    error
}

type batchOutcome struct {
	results []compile.Result
	err     error
}

func runCompileWithUI(ctx context.Context, title string, files []string, req *compile.Request) (compile.Result, error) {
	if req == nil {
		return compile.Result{}, fmt.Errorf("missing compile request")
	}
	events := make(chan compile.Event, 256)
	viewDone := make(chan struct{})
	outcomeCh := make(chan compileOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = compile.ChannelSink{Ch: events, Done: viewDone}
		res, err := compile.Compile(ctx, &reqCopy)
		outcomeCh <- compileOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// The view stopped receiving; unblock in-flight sends before waiting.
	close(viewDone)
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}

func runCompileAllWithUI(ctx context.Context, title string, files []string, req *compile.Request, jobs int) ([]compile.Result, error) {
	if req == nil {
		return nil, fmt.Errorf("missing compile request")
	}
	events := make(chan compile.Event, 256)
	viewDone := make(chan struct{})
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = compile.ChannelSink{Ch: events, Done: viewDone}
		res, err := compile.CompileAll(ctx, &reqCopy, files, jobs)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	close(viewDone)
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
