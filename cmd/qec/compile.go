package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"qec/internal/builtin"
	"qec/internal/compile"
	"qec/internal/config"
	"qec/internal/diag"
	"qec/internal/dynlib"
	"qec/internal/hal"
	"qec/internal/payload"
	"qec/internal/plugin"
	"qec/internal/session"
)

func compileExecution(cmd *cobra.Command, args []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	display, err := parseProgressDisplay(uiValue)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	inputs := args
	singleInput := config.StdStream
	if len(inputs) == 1 {
		singleInput = inputs[0]
	}

	cli := config.NewCLIBuilder(cmd.Flags())

	// A single input resolves its kinds right away; a batch defers
	// resolution to each per-input run, which sees the true file names.
	var cfg config.Config
	if len(inputs) > 1 {
		cfg, err = buildBaseConfig(cli)
	} else {
		cfg, err = config.BuildToolConfig(cli, singleInput, output)
	}
	if err != nil {
		return err
	}

	printer := newDiagnosticPrinter(cmd.ErrOrStderr(), cfg.GetVerbosity())
	printer.printBag(cli.Warnings)

	targets := hal.NewRegistry()
	payloads := payload.NewRegistry()
	if err := builtin.RegisterAll(targets, payloads); err != nil {
		return err
	}

	pluginPaths := append(append([]string(nil), cfg.PassPlugins...), cfg.DialectPlugins...)
	if len(pluginPaths) > 0 {
		loadBag := diag.NewBag(len(pluginPaths))
		dynlib.LoadAll(dynlib.GoPluginLoader{}, pluginPaths, loadBag)
		printer.printBag(loadBag)
	}

	if cfg.ShouldAddTargetPasses() {
		if err := targets.RegisterAllPasses(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	shown := false
	if cfg.ShouldShowConfig() {
		cfg.Print(out)
		shown = true
	}
	if cfg.ShouldShowTargets() {
		fmt.Fprint(out, renderTargetList(targets))
		shown = true
	}
	if cfg.ShouldShowPayloads() {
		fmt.Fprint(out, renderPayloadList(payloads))
		shown = true
	}
	if shown && len(args) == 0 {
		return nil
	}

	req := compile.Request{
		OutputPath:   output,
		Config:       cfg,
		Targets:      targets,
		Payloads:     payloads,
		Sessions:     session.NewManager(),
		Configs:      plugin.NewContextStore[*config.Config](),
		OnDiagnostic: printer.callback(),
	}

	// A batch run derives a real output file per input even when -o stays
	// "-", so only a single-input run can occupy stdout with the artifact.
	artifactOnStdout := output == config.StdStream && len(inputs) <= 1
	useTUI := display.wantsProgressUI(artifactOnStdout)

	if len(inputs) <= 1 {
		req.InputPath = singleInput
		if useTUI && singleInput != config.StdStream {
			_, err = runCompileWithUI(cmd.Context(), "qec compile", []string{singleInput}, &req)
		} else {
			_, err = compile.Compile(cmd.Context(), &req)
		}
		return err
	}

	if useTUI {
		_, err = runCompileAllWithUI(cmd.Context(), "qec compile", inputs, &req, jobs)
	} else {
		_, err = compile.CompileAll(cmd.Context(), &req, inputs, jobs)
	}
	return err
}

// buildBaseConfig layers the standard stages without resolving file kinds.
func buildBaseConfig(cli *config.CLIBuilder) (config.Config, error) {
	var cfg config.Config
	for _, stage := range []config.Builder{config.DefaultsBuilder{}, config.EnvBuilder{}, cli} {
		if err := stage.PopulateConfig(&cfg); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func applyColorMode(cmd *cobra.Command) error {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
	return nil
}
