package cli

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/server"
	"github.com/matzehuels/tagcloud/pkg/session"
)

// Config is the contents of the config file.
//
//	[pipeline]
//	spiral_step = 0.1
//	formats = ["png", "svg"]
//	fill = "#5f9ea0"
//	scale = 8
//
//	[cache]
//	url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
//	session_ttl = "30m"
type Config struct {
	Pipeline pipeline.Options `toml:"pipeline"`
	Cache    CacheConfig      `toml:"cache"`
	Server   ServerConfig     `toml:"server"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Dir string `toml:"dir"`
	URL string `toml:"url"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr       string `toml:"addr"`
	SessionTTL string `toml:"session_ttl"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:       server.DefaultAddr,
			SessionTTL: session.DefaultTTL.String(),
		},
	}
}

// ReadConfig decodes a config file over the defaults.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that the decoder cannot.
func (c Config) Validate() error {
	if c.Cache.URL != "" {
		if err := errors.ValidateURL(c.Cache.URL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache url")
		}
	}
	if _, err := c.sessionTTL(); err != nil {
		return err
	}
	if len(c.Pipeline.Formats) > 0 {
		return pipeline.ValidateFormats(c.Pipeline.Formats)
	}
	return nil
}

func (c Config) sessionTTL() (time.Duration, error) {
	if c.Server.SessionTTL == "" {
		return session.DefaultTTL, nil
	}
	d, err := time.ParseDuration(c.Server.SessionTTL)
	if err != nil || d <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "session_ttl must be a positive duration, got %q", c.Server.SessionTTL)
	}
	return d, nil
}

// loadConfig reads --config, or the default file when it exists.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := configFile()
		if err != nil {
			return nil
		}
		if _, err := os.Stat(p); err != nil {
			return nil
		}
		path = p
	}
	cfg, err := ReadConfig(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// pipelineOptions returns the configured pipeline defaults with runtime
// fields set.
func (c *CLI) pipelineOptions() pipeline.Options {
	opts := c.Config.Pipeline
	opts.Formats = append([]string(nil), opts.Formats...)
	opts.Logger = c.Logger
	return opts
}
