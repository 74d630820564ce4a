package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "APP_"

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	envFile   string
}

// WithConfigDir points Load at another directory of YAML files. The default
// is ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithEnvFile sets the dotenv file merged into the environment before the
// APP_ variables are read. The default is ./.env; "" skips it.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// layer is one configuration source, applied in order over the previous.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile. Later layers win:
//
//	built-in defaults
//	configs/base.yaml
//	configs/{profile}.yaml
//	APP_* environment variables, including those from .env
//
// Variables map onto existing keys first so that field names containing
// underscores survive: APP_DATABASE_MAX_OPEN_CONNS sets
// database.max_open_conns, and APP_RENDERER_RETRY_MAX_ATTEMPTS sets
// renderer.retry.max_attempts. Unknown variables split on every underscore.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: "configs", envFile: ".env"}
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadDotenv(o.envFile); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	layers := []layer{
		{name: "defaults", load: func(k *koanf.Koanf) error {
			return k.Load(confmap.Provider(defaults(), "."), nil)
		}},
		yamlLayer(filepath.Join(o.configDir, "base.yaml")),
		yamlLayer(filepath.Join(o.configDir, profile+".yaml")),
		{name: "environment", load: func(k *koanf.Koanf) error {
			return k.Load(env.Provider(".", env.Opt{
				Prefix:        envPrefix,
				TransformFunc: envKeyResolver(k.Keys()),
			}), nil)
		}},
	}

	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func yamlLayer(path string) layer {
	return layer{name: path, load: func(k *koanf.Koanf) error {
		return k.Load(file.Provider(path), yaml.Parser())
	}}
}

// envKeyResolver maps APP_SERVER_READ_TIMEOUT to server.read_timeout using
// the keys already loaded.
func envKeyResolver(known []string) func(key, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if dotted, ok := byEnvName[key]; ok {
			return dotted, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}
}

// loadDotenv merges path into the process environment without overriding
// variables that are already set. A missing file is fine.
func loadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// validateProfile rejects names that would escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
