package testutils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/edulens/edulens/config"
	"github.com/edulens/edulens/pkg/models"
)

// NewTestConfig returns a Config with usable defaults for tests.
func NewTestConfig() *config.Config {
	return &config.Config{
		Provider: config.ProviderConfig{
			Service:    "clip",
			ServerURL:  "http://localhost:8090",
			Model:      "ViT-B/32",
			Dimensions: 8,
			Timeout:    5 * time.Second,
			MaxRetries: 1,
		},
		Classifier: config.ClassifierConfig{
			TopK:          3,
			Temperature:   0.01,
			MinConfidence: 0.7,
			ImageSize:     224,
		},
		Batch: config.BatchConfig{
			MaxConcurrency: 4,
			ItemTimeout:    5 * time.Second,
		},
		Eval: config.EvalConfig{
			TopK:            3,
			CalibrationBins: 10,
		},
		Log: config.LogConfig{Level: "warn"},
	}
}

// StubEmbeddings is a deterministic in-process embedding client. Fixed
// vectors can be pinned per input; anything unpinned gets a reproducible
// pseudo-random unit vector derived from the input bytes, so classifying
// the same image twice always yields the same result.
type StubEmbeddings struct {
	Dimensions   int
	TextVectors  map[string]models.EmbeddingVector
	ImageVectors map[string]models.EmbeddingVector
	// Fail marks inputs the stub should refuse, to exercise error paths.
	Fail map[string]bool
}

var _ models.EmbeddingClient = &StubEmbeddings{}

func NewStubEmbeddings(dimensions int) *StubEmbeddings {
	return &StubEmbeddings{
		Dimensions:   dimensions,
		TextVectors:  make(map[string]models.EmbeddingVector),
		ImageVectors: make(map[string]models.EmbeddingVector),
		Fail:         make(map[string]bool),
	}
}

func (s *StubEmbeddings) EmbedImage(
	_ context.Context,
	image []byte,
) (models.EmbeddingVector, error) {
	key := string(image)
	if s.Fail[key] {
		return nil, models.NewEmbeddingError("stub image failure", nil)
	}
	if v, ok := s.ImageVectors[key]; ok {
		return v, nil
	}
	return deriveVector(key, s.Dimensions), nil
}

func (s *StubEmbeddings) EmbedText(
	_ context.Context,
	text string,
) (models.EmbeddingVector, error) {
	if s.Fail[text] {
		return nil, models.NewEmbeddingError("stub text failure", nil)
	}
	if v, ok := s.TextVectors[text]; ok {
		return v, nil
	}
	return deriveVector(text, s.Dimensions), nil
}

// deriveVector maps an input to a reproducible unit vector.
func deriveVector(input string, dimensions int) models.EmbeddingVector {
	h := fnv.New64a()
	_, _ = h.Write([]byte(input))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	v := make(models.EmbeddingVector, dimensions)
	var norm float64
	for i := range v {
		v[i] = float32(rng.NormFloat64())
		norm += float64(v[i]) * float64(v[i])
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
	return v
}

// BasisVector returns a unit vector along one axis. Orthogonal basis vectors
// make similarity outcomes exact in tests.
func BasisVector(dimensions, axis int) models.EmbeddingVector {
	v := make(models.EmbeddingVector, dimensions)
	v[axis] = 1
	return v
}

// GenerateEvaluationSamples fabricates a labeled manifest for fixtures and
// load-style tests. Image refs are fake filenames; the subject cycle is
// deterministic given gofakeit's seed.
func GenerateEvaluationSamples(count int, subjects []string) []models.EvaluationSample {
	samples := make([]models.EvaluationSample, count)
	for i := range samples {
		subject := subjects[i%len(subjects)]
		samples[i] = models.EvaluationSample{
			ImageRef: fmt.Sprintf(
				"%s_%s.png", subject, uuid.NewString()[:8],
			),
			TrueSubjectID: subject,
		}
	}
	return samples
}

// FakeAsset fabricates a plausible asset record for a subject.
func FakeAsset(subjectID string) models.ModelAsset {
	return models.ModelAsset{
		SubjectID:   subjectID,
		File:        subjectID + ".glb",
		DisplayName: gofakeit.ProductName(),
		Category:    gofakeit.RandomString([]string{"biology", "chemistry", "physics"}),
		Difficulty: gofakeit.RandomString([]string{
			models.DifficultyBeginner,
			models.DifficultyIntermediate,
			models.DifficultyAdvanced,
		}),
		Tags:        []string{gofakeit.Word(), gofakeit.Word()},
		Description: gofakeit.Sentence(8),
	}
}
