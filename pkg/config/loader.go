package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/homeman/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "HOMEMAN_"

// ConfigFileNames are looked up, in order, in the working directory
var ConfigFileNames = []string{"homeman.toml", ".homeman.toml"}

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envKeys maps lowercased variable names (prefix stripped) to config keys.
// Underscores are ambiguous between nesting and key names, so the mapping
// is explicit.
var envKeys = map[string]string{
	"package_root":      KeyPackageRoot,
	"home":              KeyHome,
	"linker_command":    KeyLinkerCommand,
	"linker_extra_args": KeyLinkerExtraArgs,
	"probe_max_depth":   KeyProbeMaxDepth,
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// Dir is searched for a config file. Empty means the working directory.
	Dir string

	// Overrides are applied last, keyed by dotted config key
	Overrides map[string]interface{}
}

// DefaultContent returns the embedded defaults, for display
func DefaultContent() string {
	return string(defaultConfig)
}

// Load merges every configuration source into a Config
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file
	path, err := findConfigFile(opts.Dir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigFile(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
		}
	}
	return "", nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if strings.TrimSpace(c.PackageRoot) == "" {
		return errors.New(errors.ErrConfigValid, "package_root must not be empty")
	}
	if strings.TrimSpace(c.Linker.Command) == "" {
		return errors.New(errors.ErrConfigValid, "linker.command must not be empty")
	}
	if c.Probe.MaxDepth < 1 {
		return errors.Newf(errors.ErrConfigValid, "probe.max_depth must be at least 1, got %d", c.Probe.MaxDepth)
	}
	return nil
}
