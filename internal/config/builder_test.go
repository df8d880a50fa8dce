package config

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func parsedFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("qec", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return fs
}

func TestEnvBuilder_ReadsRecognizedVariables(t *testing.T) {
	t.Setenv(EnvTargetName, "mock")
	t.Setenv(EnvTargetConfigPath, "/etc/qec/mock.toml")
	t.Setenv(EnvVerbosity, "DEBUG")
	t.Setenv(EnvMaxThreads, "8")

	var cfg Config
	if err := (EnvBuilder{}).PopulateConfig(&cfg); err != nil {
		t.Fatalf("env builder failed: %v", err)
	}

	if name, _ := cfg.GetTargetName(); name != "mock" {
		t.Fatalf("target name = %q", name)
	}
	if path, _ := cfg.GetTargetConfigPath(); path != "/etc/qec/mock.toml" {
		t.Fatalf("target config path = %q", path)
	}
	if cfg.GetVerbosity() != VerbosityDebug {
		t.Fatalf("verbosity = %s", cfg.GetVerbosity())
	}
	if threads, _ := cfg.GetMaxThreads(); threads != 8 {
		t.Fatalf("max threads = %d", threads)
	}
}

func TestEnvBuilder_RejectsMalformedValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"bad verbosity token", EnvVerbosity, "LOUD", "QEC_VERBOSITY level unrecognized"},
		{"lowercase verbosity token", EnvVerbosity, "debug", "QEC_VERBOSITY level unrecognized"},
		{"non-numeric threads", EnvMaxThreads, "many", "unable to parse maximum threads"},
		{"negative threads", EnvMaxThreads, "-2", "unable to parse maximum threads"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			var cfg Config
			err := (EnvBuilder{}).PopulateConfig(&cfg)
			if err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestBuildToolConfig_PrecedenceOrder(t *testing.T) {
	t.Setenv(EnvTargetName, "env-target")
	t.Setenv(EnvVerbosity, "INFO")

	fs := parsedFlags(t, "--target", "cli-target")
	cli := NewCLIBuilder(fs)

	cfg, err := BuildToolConfig(cli, "prog.qasm", StdStream)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// CLI overlays env, env overlays defaults, untouched fields keep
	// earlier values.
	if name, _ := cfg.GetTargetName(); name != "cli-target" {
		t.Fatalf("CLI should override env target, got %q", name)
	}
	if cfg.GetVerbosity() != VerbosityInfo {
		t.Fatalf("env verbosity should survive when the flag is untouched, got %s", cfg.GetVerbosity())
	}
	if !cfg.ShouldAddTargetPasses() {
		t.Fatalf("defaults should fill fields no stage set")
	}
	if cfg.GetInputType() != InputQASM {
		t.Fatalf("input type should resolve from the file name, got %s", cfg.GetInputType())
	}
	if cfg.GetEmitAction() != EmitMLIR {
		t.Fatalf("stdout output should default to MLIR, got %s", cfg.GetEmitAction())
	}
}

func TestBuildToolConfig_VerbosityFlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvVerbosity, "ERROR")

	fs := parsedFlags(t, "--verbosity", "debug")
	cli := NewCLIBuilder(fs)

	cfg, err := BuildToolConfig(cli, "prog.qasm", StdStream)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if cfg.GetVerbosity() != VerbosityDebug {
		t.Fatalf("--verbosity should override QEC_VERBOSITY, got %s", cfg.GetVerbosity())
	}
}

func TestCLIBuilder_OnlyChangedFlagsParticipate(t *testing.T) {
	fs := parsedFlags(t,
		"--emit", "qem",
		"--plaintext-payload",
		"--load-pass-plugin", "a.so",
		"--load-pass-plugin", "b.so",
		"--max-threads", "3",
	)
	cli := NewCLIBuilder(fs)

	base := Config{Verbosity: Some(VerbosityDebug)}
	if err := cli.PopulateConfig(&base); err != nil {
		t.Fatalf("populate failed: %v", err)
	}

	if base.GetVerbosity() != VerbosityDebug {
		t.Fatalf("untouched --verbosity must not overwrite, got %s", base.GetVerbosity())
	}
	if base.GetEmitAction() != EmitQEM {
		t.Fatalf("emit action = %s", base.GetEmitAction())
	}
	if !base.ShouldEmitPlaintextPayload() {
		t.Fatalf("plaintext flag should be set")
	}
	if len(base.PassPlugins) != 2 || base.PassPlugins[0] != "a.so" || base.PassPlugins[1] != "b.so" {
		t.Fatalf("pass plugins = %v", base.PassPlugins)
	}
	if threads, _ := base.GetMaxThreads(); threads != 3 {
		t.Fatalf("max threads = %d", threads)
	}
}

func TestCLIBuilder_RejectsUnknownEnumValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"input type", []string{"-X", "fortran"}},
		{"emit action", []string{"--emit", "tarball"}},
		{"verbosity", []string{"--verbosity", "shouty"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := parsedFlags(t, tc.args...)
			cli := NewCLIBuilder(fs)
			var cfg Config
			if err := cli.PopulateConfig(&cfg); err == nil {
				t.Fatalf("expected error for args %v", tc.args)
			}
		})
	}
}

func TestDefaultsBuilder_SeedsDocumentedDefaults(t *testing.T) {
	cfg, err := BuildConfig(DefaultsBuilder{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if cfg.GetVerbosity() != VerbosityWarn {
		t.Fatalf("verbosity = %s", cfg.GetVerbosity())
	}
	if cfg.GetPayloadName() != StdStream {
		t.Fatalf("payload name = %q", cfg.GetPayloadName())
	}
	if !cfg.ShouldAddTargetPasses() {
		t.Fatalf("add-target-passes should default to true")
	}
}
