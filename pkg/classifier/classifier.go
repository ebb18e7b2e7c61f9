package classifier

import (
	"context"

	"github.com/edulens/edulens/internal"
	"github.com/edulens/edulens/pkg/models"
	"github.com/edulens/edulens/pkg/taxonomy"
)

var log = internal.GetLogger()

const DefaultTopK = 3

// Preparer normalizes a raw image payload before it is sent to the embedding
// provider. pkg/imaging provides the production implementation; a nil
// Preparer passes payloads through untouched.
type Preparer interface {
	Prepare(image []byte) ([]byte, error)
}

// Options tune a Classifier. Zero values fall back to defaults.
type Options struct {
	Temperature float64
	TopK        int
	Preparer    Preparer
}

// Classifier orchestrates embedding, scoring, and ranking. It is a pure
// function over shared read-only state (the embedding client and the label
// cache snapshot) and is safe for concurrent use.
type Classifier struct {
	client      models.EmbeddingClient
	cache       *taxonomy.Cache
	temperature float64
	topK        int
	preparer    Preparer
}

func New(client models.EmbeddingClient, cache *taxonomy.Cache, opts Options) *Classifier {
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}
	return &Classifier{
		client:      client,
		cache:       cache,
		temperature: opts.Temperature,
		topK:        opts.TopK,
		preparer:    opts.Preparer,
	}
}

// Classify embeds one image and returns ranked predictions truncated to
// topK (the configured default when topK <= 0). An image the provider cannot
// embed surfaces as a structured EmbeddingError, never as a silent default
// prediction.
func (c *Classifier) Classify(
	ctx context.Context,
	image []byte,
	topK int,
) (*models.ClassificationResult, error) {
	if topK <= 0 {
		topK = c.topK
	}

	payload := image
	if c.preparer != nil {
		prepared, err := c.preparer.Prepare(image)
		if err != nil {
			return nil, models.NewEmbeddingError("prepare image", err)
		}
		payload = prepared
	}

	imageVector, err := c.client.EmbedImage(ctx, payload)
	if err != nil {
		if _, ok := err.(*models.EmbeddingError); ok {
			return nil, err
		}
		return nil, models.NewEmbeddingError("embed image", err)
	}

	snapshot := c.cache.Load()
	predictions, err := Score(imageVector, snapshot, c.temperature)
	if err != nil {
		return nil, err
	}

	if topK > len(predictions) {
		topK = len(predictions)
	}
	top := predictions[:topK]

	result := &models.ClassificationResult{
		PredictedSubject: top[0].SubjectID,
		Confidence:       top[0].Confidence,
		Predictions:      top,
	}

	log.Debugf(
		"classified image as %s (confidence %.4f)",
		result.PredictedSubject,
		result.Confidence,
	)
	return result, nil
}

// Labels returns the current taxonomy entries in declaration order.
func (c *Classifier) Labels() []models.LabelEntry {
	snapshot := c.cache.Load()
	return append([]models.LabelEntry(nil), snapshot.Entries...)
}

// AddLabel extends the taxonomy with a new subject. Only the new label's
// text embedding is computed; the swap is safe to perform between batches
// without invalidating in-flight classifications.
func (c *Classifier) AddLabel(ctx context.Context, entry models.LabelEntry) error {
	return c.cache.AddLabel(ctx, entry)
}

// RemoveLabel drops a subject from the taxonomy.
func (c *Classifier) RemoveLabel(subjectID string) error {
	return c.cache.RemoveLabel(subjectID)
}
