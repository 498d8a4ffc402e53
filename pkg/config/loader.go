package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileNames are tried in order in the working directory
var ConfigFileNames = []string{".redo.toml", "redo.toml"}

// envKeys maps the environment variables redo reads configuration from to
// koanf keys. REDO_PARENT and REDO_VERBOSE are deliberately absent: they
// describe the invocation, not the configuration.
var envKeys = map[string]string{
	"REDO_RECIPE_PATH":  "recipe.path",
	"REDO_EXEC_PREFIX":  "recipe.exec_prefix",
	"REDO_MAX_PATH":     "target.max_path",
	"REDO_LOCK_TARGETS": "target.lock",
	"REDO_LOCK_LEDGER":  "ledger.lock",
	"REDO_LOG_FILE":     "log.file",
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// WorkDir is searched for ConfigFileNames; empty means the current directory
	WorkDir string

	// Overrides are applied last, keyed by koanf path (e.g. "target.lock")
	Overrides map[string]interface{}
}

// Load builds the configuration from defaults, file, environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	source, err := findConfigFile(opts.WorkDir)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source)
		}
	}

	// 3. Environment
	err = k.Load(env.Provider("REDO_", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	// 6. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the embedded defaults without consulting files or the environment
func Default() *Config {
	return &Config{
		Recipe: RecipeConfig{Path: paths.DefaultRecipePath},
		Target: TargetConfig{MaxPath: paths.DefaultMaxPath},
		Ledger: LedgerConfig{Suffix: paths.DefaultLedgerSuffix, Lock: true},
	}
}

// findConfigFile returns the config file to load, or "" when there is none.
// A file named by REDO_CONFIG must exist.
func findConfigFile(workDir string) (string, error) {
	if explicit := os.Getenv(paths.EnvConfig); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", explicit)
		}
		return explicit, nil
	}

	for _, name := range ConfigFileNames {
		path := paths.InDir(workDir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "stat %s", path)
		}
	}
	return "", nil
}

func postProcessConfig(cfg *Config) error {
	if cfg.Target.MaxPath < 0 {
		return errors.Newf(errors.ErrConfigParse, "target.max_path must not be negative, got %d", cfg.Target.MaxPath)
	}

	suffix := strings.TrimSpace(cfg.Ledger.Suffix)
	if suffix == "" {
		return errors.New(errors.ErrConfigParse, "ledger.suffix must not be empty")
	}
	if strings.ContainsRune(suffix, filepath.Separator) {
		return errors.Newf(errors.ErrConfigParse, "ledger.suffix must not contain %q", string(filepath.Separator))
	}
	cfg.Ledger.Suffix = suffix

	return nil
}

// String returns a short human readable description of where the config came from
func (c *Config) String() string {
	source := c.Source
	if source == "" {
		source = "defaults"
	}
	return fmt.Sprintf("config(%s)", source)
}
