package config

// Builder is one configuration stage. PopulateConfig layers the stage's
// settings on top of cfg: a stage must only overwrite fields it actually has
// information for, which every implementation here guarantees by building an
// overlay Config and applying the pure Merge.
type Builder interface {
	PopulateConfig(cfg *Config) error
}

// FileAwareBuilder is a stage that additionally needs the real input/output
// file names to finish resolution (the command-line stage).
type FileAwareBuilder interface {
	Builder
	PopulateConfigWithFiles(cfg *Config, inputFilename, outputFilename string) error
}

// BuildConfig builds a fresh record from a single stage layered over the
// defaults.
func BuildConfig(b Builder) (Config, error) {
	var cfg Config
	if err := (DefaultsBuilder{}).PopulateConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := b.PopulateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BuildToolConfig runs the standard stage order — defaults, environment,
// command line — and resolves input/output kinds from the given file names.
// The precedence is fixed: later stages overlay earlier ones, and a stage
// that found nothing for a field leaves the earlier value intact. Non-fatal
// resolution warnings are collected by the command-line stage's bag.
func BuildToolConfig(cli FileAwareBuilder, inputFilename, outputFilename string) (Config, error) {
	var cfg Config
	stages := []Builder{DefaultsBuilder{}, EnvBuilder{}}
	for _, stage := range stages {
		if err := stage.PopulateConfig(&cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cli.PopulateConfigWithFiles(&cfg, inputFilename, outputFilename); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
