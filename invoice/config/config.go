package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config carries the renderer defaults applied to every invoice that does
// not set the field itself.
type Config struct {
	GeneratingSystem string `mapstructure:"generating_system"`
	DocumentType     string `mapstructure:"document_type"`
	Currency         string `mapstructure:"currency"`
	Language         string `mapstructure:"language"`
	OutputDir        string `mapstructure:"output_dir"`
}

// ReadConfig loads the renderer configuration. Values come from an optional
// ebinvoice.json config file, overridable through EBINVOICE_* environment
// variables; built-in defaults apply otherwise.
func ReadConfig() (*Config, error) {
	viper.SetConfigName(getConfigName())
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	// Allow environment variables to override config
	viper.AutomaticEnv()
	viper.SetEnvPrefix("EBINVOICE")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults carry the tool.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func getConfigName() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		return "ebinvoice"
	}
	return "ebinvoice." + env
}

func setDefaults() {
	viper.SetDefault("generating_system", "ebinvoice")
	viper.SetDefault("document_type", "Invoice")
	viper.SetDefault("currency", "EUR")
	viper.SetDefault("language", "de")
	viper.SetDefault("output_dir", getEnv("EBINVOICE_OUTPUT_DIR", "."))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
