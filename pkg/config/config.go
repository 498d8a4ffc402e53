package config

// Config is the merged redo configuration
type Config struct {
	Recipe RecipeConfig `koanf:"recipe" toml:"recipe"`
	Target TargetConfig `koanf:"target" toml:"target"`
	Ledger LedgerConfig `koanf:"ledger" toml:"ledger"`
	Log    LogConfig    `koanf:"log" toml:"log"`

	// Source is the configuration file that was loaded, if any
	Source string `koanf:"-" toml:"-"`
}

// RecipeConfig controls the environment recipes run in
type RecipeConfig struct {
	Path       string `koanf:"path" toml:"path"`
	ExecPrefix string `koanf:"exec_prefix" toml:"exec_prefix"`
}

// TargetConfig controls how targets are validated and published
type TargetConfig struct {
	MaxPath int  `koanf:"max_path" toml:"max_path"`
	Lock    bool `koanf:"lock" toml:"lock"`
}

// LedgerConfig controls the prereq ledger
type LedgerConfig struct {
	Suffix string `koanf:"suffix" toml:"suffix"`
	Lock   bool   `koanf:"lock" toml:"lock"`
}

// LogConfig controls file logging
type LogConfig struct {
	File bool `koanf:"file" toml:"file"`
}
