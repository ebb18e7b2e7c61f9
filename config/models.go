package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Provider   ProviderConfig   `mapstructure:"provider"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Assets     AssetsConfig     `mapstructure:"assets"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Eval       EvalConfig       `mapstructure:"eval"`
	Dataset    DatasetConfig    `mapstructure:"dataset"`
	Log        LogConfig        `mapstructure:"log"`
}

// ProviderConfig configures the embedding provider. The provider is an
// external CLIP inference service reached over HTTP; the model weights are
// loaded once by that service and shared across all classification calls.
type ProviderConfig struct {
	Service    string        `mapstructure:"service"`
	ServerURL  string        `mapstructure:"server_url"`
	Model      string        `mapstructure:"model"`
	Dimensions int           `mapstructure:"dimensions"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxRetries int           `mapstructure:"max_retries"`
}

// ClassifierConfig configures scoring and ranking. Temperature is the softmax
// temperature applied to cosine similarities: lower values sharpen the
// winner's confidence, higher values flatten the distribution.
type ClassifierConfig struct {
	TopK          int     `mapstructure:"top_k"`
	Temperature   float64 `mapstructure:"temperature"`
	MinConfidence float64 `mapstructure:"min_confidence"`
	TaxonomyPath  string  `mapstructure:"taxonomy_path"`
	ImageSize     int     `mapstructure:"image_size"`
}

type AssetsConfig struct {
	MetadataPath string `mapstructure:"metadata_path"`
}

type BatchConfig struct {
	MaxConcurrency int           `mapstructure:"max_concurrency"`
	ItemTimeout    time.Duration `mapstructure:"item_timeout"`
}

type EvalConfig struct {
	TopK            int `mapstructure:"top_k"`
	CalibrationBins int `mapstructure:"calibration_bins"`
}

type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}
