package radio

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Option configures a Radio.
type Option func(*Radio)

// WithLogger sets the Logger used by the default debug and activity hooks.
func WithLogger(logger Logger) Option {
	return func(r *Radio) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDebug turns debug warnings on or off from the start.
func WithDebug(enabled bool) Option {
	return func(r *Radio) {
		r.debug.Store(enabled)
	}
}

// WithDebugLog replaces the hook that receives debug warnings. It is only
// called while debug is on.
func WithDebugLog(fn DebugLogFunc) Option {
	return func(r *Radio) {
		r.debugLogFn = fn
	}
}

// WithLogFunc replaces the hook that receives the activity of tuned in
// channels.
func WithLogFunc(fn LogFunc) Option {
	return func(r *Radio) {
		r.logFn = fn
	}
}

// WithTunedIn tunes into the named channels as soon as the Radio is built.
func WithTunedIn(channelNames ...string) Option {
	return func(r *Radio) {
		r.tuneIn = append(r.tuneIn, channelNames...)
	}
}

// Config is the file and environment driven configuration of a Radio.
type Config struct {
	Debug  bool
	TuneIn []string
}

// configFile mirrors the YAML schema:
//
//	radio:
//	  debug: true
//	  tune_in: [app, session]
type configFile struct {
	Radio struct {
		Debug  *bool    `yaml:"debug"`
		TuneIn []string `yaml:"tune_in"`
	} `yaml:"radio"`
}

// LoadConfig resolves configuration in priority order: defaults, then the
// YAML file at path (skipped when path is empty), then RADIO_DEBUG and
// RADIO_TUNE_IN from the environment.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return Config{}, errors.Wrap(ErrConfigNotFound, path)
			}
			return Config{}, errors.Wrapf(err, "read radio config %s", path)
		}

		var f configFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Config{}, wrapErrorInvalidConfig(err, path)
		}
		if f.Radio.Debug != nil {
			cfg.Debug = *f.Radio.Debug
		}
		if len(f.Radio.TuneIn) > 0 {
			cfg.TuneIn = f.Radio.TuneIn
		}
	}

	cfg.Debug = envBool("RADIO_DEBUG", cfg.Debug)
	cfg.TuneIn = envCSV("RADIO_TUNE_IN", cfg.TuneIn)

	return cfg, nil
}

// Options turns the configuration into Radio options.
func (c Config) Options() []Option {
	opts := []Option{WithDebug(c.Debug)}
	if len(c.TuneIn) > 0 {
		opts = append(opts, WithTunedIn(c.TuneIn...))
	}
	return opts
}

// envBool parses common boolean env forms and falls back on anything else.
func envBool(name string, fallback bool) bool {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}

// envCSV parses a comma separated env var, dropping empty segments.
func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
