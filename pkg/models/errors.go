package models

import (
	"errors"
	"fmt"
)

var ErrAssetNotFound = errors.New("asset not found")

// AssetNotFoundError is returned when no 3D asset is mapped to a subject.
// This is an expected, recoverable condition: callers route it to manual
// review rather than failing the pipeline.
type AssetNotFoundError struct {
	SubjectID string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("no asset mapped for subject %q", e.SubjectID)
}

func (e *AssetNotFoundError) Unwrap() error {
	return ErrAssetNotFound
}

func NewAssetNotFoundError(subjectID string) error {
	return &AssetNotFoundError{SubjectID: subjectID}
}

var ErrEmbeddingFailed = errors.New("embedding failed")

// EmbeddingError is returned when the embedding provider cannot produce a
// vector for an input, e.g. an undecodable image or a provider outage.
// Per-item recoverable in batch mode, fatal for single-image calls.
type EmbeddingError struct {
	Message       string
	OriginalError error
}

func (e *EmbeddingError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("embedding failed: %s", e.Message)
	}
	return fmt.Sprintf("embedding failed: %s (original error: %v)", e.Message, e.OriginalError)
}

func (e *EmbeddingError) Unwrap() error {
	return ErrEmbeddingFailed
}

func NewEmbeddingError(message string, originalError error) error {
	return &EmbeddingError{Message: message, OriginalError: originalError}
}

var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// DimensionMismatchError indicates a taxonomy/model mismatch. It is a
// configuration error, not a per-request condition.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: want %d, got %d", e.Want, e.Got)
}

func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

var ErrDegenerateEmbedding = errors.New("degenerate embedding")

// DegenerateEmbeddingError indicates a vector whose L2 norm is zero or
// non-finite, which cannot be normalized for cosine similarity.
type DegenerateEmbeddingError struct {
	Norm float64
}

func (e *DegenerateEmbeddingError) Error() string {
	return fmt.Sprintf("degenerate embedding: norm %v is not normalizable", e.Norm)
}

func (e *DegenerateEmbeddingError) Unwrap() error {
	return ErrDegenerateEmbedding
}
