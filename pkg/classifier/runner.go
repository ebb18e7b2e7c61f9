package classifier

import (
	"context"
	"errors"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/timeout"
	"golang.org/x/sync/errgroup"

	"github.com/edulens/edulens/pkg/models"
)

const (
	DefaultMaxConcurrency = 4
	DefaultItemTimeout    = 30 * time.Second
)

// BatchRunner applies the classifier over many images with a bounded worker
// pool. Image embedding dominates wall time, so the pool bound keeps memory
// use flat when many large images arrive at once.
type BatchRunner struct {
	classifier  *Classifier
	concurrency int
	itemTimeout time.Duration
}

func NewBatchRunner(c *Classifier, concurrency int, itemTimeout time.Duration) *BatchRunner {
	if concurrency <= 0 {
		concurrency = DefaultMaxConcurrency
	}
	if itemTimeout <= 0 {
		itemTimeout = DefaultItemTimeout
	}
	return &BatchRunner{
		classifier:  c,
		concurrency: concurrency,
		itemTimeout: itemTimeout,
	}
}

// Run classifies every item independently. A failure on one image never
// aborts the batch: each slot in the returned slice is either a successful
// classification or an error record, in input order, one per item. An item
// exceeding the configured timeout is recorded as a failure, not retried.
func (r *BatchRunner) Run(
	ctx context.Context,
	items []models.BatchItem,
	topK int,
) []models.BatchItemResult {
	results := make([]models.BatchItemResult, len(items))

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			results[i] = r.runItem(ctx, item, topK)
			return nil
		})
	}

	// Item errors are captured in the result slots, never returned.
	_ = g.Wait()

	return results
}

func (r *BatchRunner) runItem(
	ctx context.Context,
	item models.BatchItem,
	topK int,
) models.BatchItemResult {
	itemCtx, cancel := context.WithTimeout(ctx, r.itemTimeout)
	defer cancel()

	to := timeout.With[*models.ClassificationResult](r.itemTimeout)
	result, err := failsafe.Get(func() (*models.ClassificationResult, error) {
		return r.classifier.Classify(itemCtx, item.Data, topK)
	}, to)
	if err != nil {
		if errors.Is(err, timeout.ErrExceeded) {
			log.Warnf("batch item %s exceeded inference timeout", item.ImageRef)
		}
		return models.BatchItemResult{
			ImageRef: item.ImageRef,
			Status:   models.BatchStatusError,
			Error:    err.Error(),
		}
	}

	return models.BatchItemResult{
		ImageRef:       item.ImageRef,
		Status:         models.BatchStatusSuccess,
		Classification: result,
	}
}
