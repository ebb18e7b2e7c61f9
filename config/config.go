package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/edulens/edulens/internal"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

var defaults = map[string]interface{}{
	"provider.service":          "clip",
	"provider.server_url":       "http://localhost:8090",
	"provider.model":            "ViT-B/32",
	"provider.dimensions":       512,
	"provider.timeout":          30 * time.Second,
	"provider.max_retries":      3,
	"classifier.top_k":          3,
	"classifier.temperature":    0.01,
	"classifier.min_confidence": 0.7,
	"classifier.image_size":     224,
	"batch.max_concurrency":     4,
	"batch.item_timeout":        30 * time.Second,
	"eval.top_k":                3,
	"eval.calibration_bins":     10,
	"dataset.path":              "./data",
	"log.level":                 "info",
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config file is not an error; defaults and ENV apply.
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("EDULENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges that would otherwise surface as confusing runtime
// failures deep in the scoring pipeline.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	if cfg.Classifier.Temperature <= 0 {
		return errors.New("classifier.temperature must be positive")
	}
	if cfg.Classifier.MinConfidence < 0 || cfg.Classifier.MinConfidence > 1 {
		return errors.New("classifier.min_confidence must be in [0,1]")
	}
	if cfg.Provider.Dimensions <= 0 {
		return errors.New("provider.dimensions must be positive")
	}
	if cfg.Batch.MaxConcurrency <= 0 {
		return errors.New("batch.max_concurrency must be positive")
	}
	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
