package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrMissingCredentials is reported when the Telegram API credentials are not
// configured. Loading tolerates their absence; client construction does not.
var ErrMissingCredentials = errors.New("telegram api credentials not configured")

// Config holds the application configuration.
type Config struct {
	// Telegram API credentials, from https://my.telegram.org/apps.
	APIID   int    `mapstructure:"api_id"`
	APIHash string `mapstructure:"api_hash"`
	Phone   string `mapstructure:"phone"`

	// Scrape settings, filled from command line flags.
	Group       string
	Limit       int
	OutputFile  string
	FileTypes   []string
	ExportJSON  bool
	SessionFile string
}

// Load reads credentials from cfgFile (or ./config.yaml when empty) and the
// TGSCRAPER_* environment. A missing config file or missing credentials is
// not an error here: Validate reports it when the client is built.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("api_id", 0)
	v.SetDefault("api_hash", "")
	v.SetDefault("phone", "")

	v.SetEnvPrefix("TGSCRAPER")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the credentials required to construct the Telegram
// client are present.
func (c Config) Validate() error {
	if c.APIID == 0 || c.APIHash == "" {
		return fmt.Errorf("%w: set api_id and api_hash in config.yaml or TGSCRAPER_API_ID/TGSCRAPER_API_HASH", ErrMissingCredentials)
	}
	return nil
}
