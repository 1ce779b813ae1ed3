package config

import "github.com/hargabyte/pyrepr/internal/render"

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// the config file is missing specific fields.
func DefaultConfig() *Config {
	return &Config{
		Add: AddConfig{
			KwargSplat:    render.DefaultKwargSplat,
			QualifiedName: render.DefaultQualifiedName,
		},
		Scan: ScanConfig{
			Exclude: []string{
				".git",
				".tox",
				".venv",
				"venv",
				"__pycache__",
				"node_modules",
				"build",
				"dist",
				"*.egg-info",
			},
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Add = loaded.Add
	if result.Add.KwargSplat == "" {
		result.Add.KwargSplat = defaults.Add.KwargSplat
	}
	if result.Add.QualifiedName == "" {
		result.Add.QualifiedName = defaults.Add.QualifiedName
	}

	result.Scan = loaded.Scan
	if len(result.Scan.Exclude) == 0 {
		result.Scan.Exclude = defaults.Scan.Exclude
	}

	result.Output = loaded.Output
	if result.Output.Color == "" {
		result.Output.Color = defaults.Output.Color
	}

	return result
}
