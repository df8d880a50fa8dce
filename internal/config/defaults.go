package config

// DefaultsBuilder is the first configuration stage: the compiled-in
// defaults every later stage overlays.
type DefaultsBuilder struct{}

// PopulateConfig applies the documented defaults.
func (DefaultsBuilder) PopulateConfig(cfg *Config) error {
	overlay := Config{
		Verbosity:       Some(VerbosityWarn),
		PayloadName:     Some(StdStream),
		AddTargetPasses: Some(true),

		ShowTargets:                    Some(false),
		ShowPayloads:                   Some(false),
		ShowConfig:                     Some(false),
		PlaintextPayload:               Some(false),
		IncludeSource:                  Some(false),
		CompileTargetIR:                Some(false),
		BypassPayloadTargetCompilation: Some(false),
	}
	*cfg = Merge(*cfg, overlay)
	return nil
}
