package eval

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/edulens/edulens/pkg/models"
)

var validate = validator.New()

// LoadManifest reads a labeled dataset manifest: a JSON array of
// {image_ref, true_subject_id} entries.
func LoadManifest(path string) ([]models.EvaluationSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var samples []models.EvaluationSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	for i, sample := range samples {
		if err := validate.Struct(sample); err != nil {
			return nil, fmt.Errorf("invalid manifest entry %d: %w", i, err)
		}
	}
	return samples, nil
}

// WriteManifest saves a manifest to disk.
func WriteManifest(path string, samples []models.EvaluationSample) error {
	data, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
