package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadOptions selects the layers Load reads.
type LoadOptions struct {
	// Filesystem the YAML file is read from, default: the OS filesystem
	Fs afero.Fs
	// YAML file, skipped when empty
	File string
	// Environment to read TG_ variables from, default: os.Environ
	Environ map[string]string
}

// Load builds a validated Config from defaults, the YAML file and the
// environment, in that order.
func Load(opts LoadOptions) (*Config, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Environ == nil {
		opts.Environ = env.ToMap(os.Environ())
	}

	return newBuilder().
		withDefaults().
		withFile(opts.Fs, opts.File).
		withEnv(opts.Environ).
		build()
}

type builder struct {
	configs []*Config
	err     error
}

func newBuilder() *builder {
	return &builder{configs: make([]*Config, 0, 3)}
}

func (b *builder) withDefaults() *builder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *builder) withFile(fs afero.Fs, path string) *builder {
	if path == "" || b.err != nil {
		return b
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		b.err = errors.Wrap(err, "reading config file")
		return b
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		b.err = errors.Wrapf(err, "parsing %s", path)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *builder) withEnv(environ map[string]string) *builder {
	if b.err != nil {
		return b
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		b.err = errors.Wrap(err, "reading environment")
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *builder) build() (*Config, error) {
	if b.err != nil {
		return nil, errors.Wrap(b.err, "building config")
	}

	cfg := new(Config)
	for _, layer := range b.configs {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, errors.Wrap(err, "merging configs")
		}
	}
	cfg.resolve()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Dir == "":
		return errors.Wrap(ErrInvalidConfig, "dir is empty")
	case c.AuthKeyFile == "" || c.StateFile == "" || c.SecretChatFile == "":
		return errors.Wrap(ErrInvalidConfig, "session file name is empty")
	case c.ResetAuthorization < 0 || c.ResetAuthorization > 2:
		return errors.Wrapf(ErrInvalidConfig, "reset_authorization %d not in 0..2", c.ResetAuthorization)
	}

	switch strings.ToLower(c.LogLevel) {
	case "trace", "debug", "info", "warn", "warning", "error", "disable", "disabled", "none", "off":
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown log level %q", c.LogLevel)
	}
	return nil
}
