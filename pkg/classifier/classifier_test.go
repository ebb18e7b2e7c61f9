package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulens/edulens/pkg/models"
	"github.com/edulens/edulens/pkg/taxonomy"
	"github.com/edulens/edulens/pkg/testutils"
)

const testDimensions = 8

// newTestClassifier builds a classifier over a small taxonomy whose label
// vectors form an orthogonal basis, so outcomes are exact.
func newTestClassifier(
	t *testing.T,
	subjects ...string,
) (*Classifier, *testutils.StubEmbeddings) {
	t.Helper()

	stub := testutils.NewStubEmbeddings(testDimensions)
	entries := make([]models.LabelEntry, len(subjects))
	for i, subject := range subjects {
		entries[i] = models.LabelEntry{
			SubjectID: subject,
			Prompt:    "a diagram of " + subject,
			Category:  "test",
		}
		stub.TextVectors[entries[i].Prompt] = testutils.BasisVector(testDimensions, i)
	}

	tax, err := taxonomy.New(entries)
	require.NoError(t, err)
	cache, err := taxonomy.BuildCache(context.Background(), stub, tax)
	require.NoError(t, err)

	return New(stub, cache, Options{}), stub
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("PredictsAlignedLabel", func(t *testing.T) {
		c, stub := newTestClassifier(t, "heart", "cell", "dna", "atom", "lever")
		stub.ImageVectors["heart.png"] = testutils.BasisVector(testDimensions, 0)

		result, err := c.Classify(ctx, []byte("heart.png"), 0)
		require.NoError(t, err)
		assert.Equal(t, "heart", result.PredictedSubject)
		assert.Greater(t, result.Confidence, 0.99)
		// Default top-k is 3.
		assert.Len(t, result.Predictions, 3)
		assert.Equal(t, result.PredictedSubject, result.Predictions[0].SubjectID)
		assert.Equal(t, result.Confidence, result.Predictions[0].Confidence)
	})

	t.Run("TopKTruncation", func(t *testing.T) {
		c, _ := newTestClassifier(t, "heart", "cell", "dna", "atom", "lever")

		result, err := c.Classify(ctx, []byte("anything"), 2)
		require.NoError(t, err)
		assert.Len(t, result.Predictions, 2)

		result, err = c.Classify(ctx, []byte("anything"), 50)
		require.NoError(t, err)
		assert.Len(t, result.Predictions, 5)
	})

	t.Run("Idempotent", func(t *testing.T) {
		c, _ := newTestClassifier(t, "heart", "cell", "dna")

		first, err := c.Classify(ctx, []byte("same-image"), 3)
		require.NoError(t, err)
		second, err := c.Classify(ctx, []byte("same-image"), 3)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("EmbeddingFailurePropagates", func(t *testing.T) {
		c, stub := newTestClassifier(t, "heart", "cell")
		stub.Fail["corrupt.png"] = true

		result, err := c.Classify(ctx, []byte("corrupt.png"), 0)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, models.ErrEmbeddingFailed)
	})
}

func TestAddLabel(t *testing.T) {
	ctx := context.Background()

	t.Run("NewLabelBecomesPredictable", func(t *testing.T) {
		c, stub := newTestClassifier(t, "heart", "cell")

		entry := models.LabelEntry{
			SubjectID: "volcano",
			Prompt:    "volcanic eruption diagram",
			Category:  "geology",
		}
		stub.TextVectors[entry.Prompt] = testutils.BasisVector(testDimensions, 5)
		require.NoError(t, c.AddLabel(ctx, entry))

		assert.Len(t, c.Labels(), 3)

		stub.ImageVectors["volcano.png"] = testutils.BasisVector(testDimensions, 5)
		result, err := c.Classify(ctx, []byte("volcano.png"), 1)
		require.NoError(t, err)
		assert.Equal(t, "volcano", result.PredictedSubject)
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		c, _ := newTestClassifier(t, "heart", "cell")
		err := c.AddLabel(ctx, models.LabelEntry{SubjectID: "heart", Prompt: "heart"})
		assert.Error(t, err)
	})

	t.Run("RemoveLabel", func(t *testing.T) {
		c, _ := newTestClassifier(t, "heart", "cell", "dna")
		require.NoError(t, c.RemoveLabel("cell"))
		assert.Len(t, c.Labels(), 2)

		assert.Error(t, c.RemoveLabel("unknown"))
	})
}
