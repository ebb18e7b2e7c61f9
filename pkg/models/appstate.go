package models

import (
	"github.com/edulens/edulens/config"
)

// AppState is a struct that holds the shared state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	EmbeddingClient EmbeddingClient
	Config          *config.Config
}
