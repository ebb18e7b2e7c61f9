package models

import (
	"context"
	"math"

	"github.com/viterin/vek/vek32"
)

// EmbeddingVector is a fixed-dimension embedding produced by the pretrained
// vision-language model. All vectors compared together must share the same
// dimension.
type EmbeddingVector []float32

// EmbeddingClient is the boundary to the pretrained model. Both methods are
// deterministic for a fixed model version and side-effect-free from the
// core's perspective, which lets tests substitute a stub client.
type EmbeddingClient interface {
	EmbedImage(ctx context.Context, image []byte) (EmbeddingVector, error)
	EmbedText(ctx context.Context, text string) (EmbeddingVector, error)
}

// L2Normalize returns a unit-norm copy of v. A zero or non-finite norm is a
// DegenerateEmbeddingError, since such a vector has no direction to compare.
func L2Normalize(v EmbeddingVector) (EmbeddingVector, error) {
	norm := float64(vek32.Norm(v))
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, &DegenerateEmbeddingError{Norm: norm}
	}
	return vek32.DivNumber(v, float32(norm)), nil
}

// Dot is the inner product of two vectors of equal dimension. For unit
// vectors this is their cosine similarity.
func Dot(a, b EmbeddingVector) float64 {
	return float64(vek32.Dot(a, b))
}
