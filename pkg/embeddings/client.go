package embeddings

import (
	"fmt"

	"github.com/edulens/edulens/config"
	"github.com/edulens/edulens/internal"
	"github.com/edulens/edulens/pkg/models"
)

var log = internal.GetLogger()

// NewClient creates the embedding client configured by provider.service.
func NewClient(cfg *config.Config) (models.EmbeddingClient, error) {
	switch cfg.Provider.Service {
	// For now the only supported provider is a CLIP inference sidecar
	case "clip":
		return NewCLIPClient(cfg), nil
	default:
		return nil, fmt.Errorf("invalid embeddings service: %s", cfg.Provider.Service)
	}
}
