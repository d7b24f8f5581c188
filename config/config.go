// Package config reads the ofo settings.
//
// Settings come from, in increasing priority: built-in defaults, an ofo.yaml
// file, a .env file in the working directory, and OMNIFOLIO_* environment
// variables.
//
//	root: ~/finance            # OMNIFOLIO_ROOT
//	currencies: [AUD, USD]     # OMNIFOLIO_CURRENCIES=AUD,USD (empty accepts any ISO-4217 code)
//	events: strict             # OMNIFOLIO_EVENTS, strict or lenient
//	version: -1                # OMNIFOLIO_VERSION
//	log:
//	  level: info              # OMNIFOLIO_LOG_LEVEL
//	  format: text             # OMNIFOLIO_LOG_FORMAT, text or json
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/omnifolio"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "OMNIFOLIO"

// Config holds the ofo settings.
type Config struct {
	Root       string   `mapstructure:"root"       validate:"required"`
	Currencies []string `mapstructure:"currencies" validate:"dive,currency"`
	Events     string   `mapstructure:"events"     validate:"oneof=strict lenient"`
	Version    int64    `mapstructure:"version"`
	Log        Log      `mapstructure:"log"`
}

// Log holds the logging settings.
type Log struct {
	Level  string `mapstructure:"level"  validate:"oneof=trace debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// Load reads the settings.
//
// If file is empty, ofo.yaml is searched in the working directory then in
// $HOME/.config/omnifolio, and it is fine if there is none.
// Otherwise file must exist.
func Load(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("ofo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "omnifolio"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Events = strings.ToLower(cfg.Events)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("currencies", omnifolio.DefaultCurrencies)
	v.SetDefault("events", omnifolio.EventsStrict.String())
	v.SetDefault("version", omnifolio.Version)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks every setting.
func (c *Config) Validate() error {
	v := validator.New()
	if err := omnifolio.RegisterValidations(v); err != nil {
		return err
	}
	err := v.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Loader returns a data root Loader using these settings, and logging into log.
func (c *Config) Loader(log logrus.FieldLogger) (*omnifolio.Loader, error) {
	events, err := omnifolio.ParseEventsPolicy(c.Events)
	if err != nil {
		return nil, err
	}
	return &omnifolio.Loader{
		Currencies: c.Currencies,
		Events:     events,
		Version:    c.Version,
		Log:        log,
	}, nil
}

// Logger returns a logger writing into w with the configured level and format.
func (c *Config) Logger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	switch c.Log.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger, nil
}
