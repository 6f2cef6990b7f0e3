package htmlbind

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable read by ConfigFromEnv.
const EnvPrefix = "HTMLBIND_"

// Config controls how values are read from markup.
type Config struct {
	// TagName is the struct tag holding selectors.
	TagName string `env:"TAG_NAME" envDefault:"goquery"`
	// TimeLayouts are tried in order for time.Time fields. Layouts contain
	// commas, so the variable is split on '|'.
	TimeLayouts []string `env:"TIME_LAYOUTS" envSeparator:"|" envDefault:"2006-01-02T15:04:05Z07:00|2006-01-02T15:04:05|2006-01-02 15:04:05|2006-01-02|Mon, 02 Jan 2006 15:04:05 MST"`
	// TrimSpace trims text and html values before conversion.
	TrimSpace bool `env:"TRIM_SPACE" envDefault:"true"`
}

var errInvalidConfig = errors.New("htmlbind: invalid config")

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("htmlbind: default config: %v", err))
	}
	return cfg
}

// ConfigFromEnv reads the configuration from HTMLBIND_* environment
// variables, falling back to the defaults for anything unset.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(errInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.TagName == "" {
		return fmt.Errorf("%w: empty tag name", errInvalidConfig)
	}
	if len(c.TimeLayouts) == 0 {
		return fmt.Errorf("%w: no time layouts", errInvalidConfig)
	}
	return nil
}
