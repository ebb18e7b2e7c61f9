package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulens/edulens/pkg/models"
	"github.com/edulens/edulens/pkg/testutils"
)

func newTestCache(t *testing.T, stub *testutils.StubEmbeddings) *Cache {
	t.Helper()
	tax, err := New(testEntries())
	require.NoError(t, err)
	cache, err := BuildCache(context.Background(), stub, tax)
	require.NoError(t, err)
	return cache
}

func TestBuildCache(t *testing.T) {
	ctx := context.Background()

	t.Run("VectorsAreUnitNormalized", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		stub.TextVectors["a labeled diagram of a human heart"] = models.EmbeddingVector{
			3, 4, 0, 0, 0, 0, 0, 0,
		}

		cache := newTestCache(t, stub)
		snapshot := cache.Load()
		require.Len(t, snapshot.Vectors, 3)
		assert.Equal(t, 8, snapshot.Dimensions)

		// 3-4-5 triangle collapses to 0.6, 0.8 after normalization.
		assert.InDelta(t, 0.6, float64(snapshot.Vectors[0][0]), 1e-6)
		assert.InDelta(t, 0.8, float64(snapshot.Vectors[0][1]), 1e-6)
	})

	t.Run("EntriesAlignedWithVectors", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		cache := newTestCache(t, stub)
		snapshot := cache.Load()
		assert.Len(t, snapshot.Entries, len(snapshot.Vectors))
		assert.Equal(t, "heart", snapshot.Entries[0].SubjectID)
	})

	t.Run("PromptEmbeddingFailureAborts", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		stub.Fail["a diagram of an atom"] = true

		tax, err := New(testEntries())
		require.NoError(t, err)
		_, err = BuildCache(ctx, stub, tax)
		assert.ErrorIs(t, err, models.ErrEmbeddingFailed)
	})

	t.Run("InconsistentDimensionsRejected", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		stub.TextVectors["a diagram of a lever"] = models.EmbeddingVector{1, 0, 0, 0}

		tax, err := New(testEntries())
		require.NoError(t, err)
		_, err = BuildCache(ctx, stub, tax)
		assert.ErrorIs(t, err, models.ErrDimensionMismatch)
	})

	t.Run("ZeroVectorRejected", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		stub.TextVectors["a diagram of an atom"] = make(models.EmbeddingVector, 8)

		tax, err := New(testEntries())
		require.NoError(t, err)
		_, err = BuildCache(ctx, stub, tax)
		assert.ErrorIs(t, err, models.ErrDegenerateEmbedding)
	})
}

func TestAddLabel(t *testing.T) {
	ctx := context.Background()

	t.Run("AppendsAndSwaps", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		cache := newTestCache(t, stub)
		before := cache.Load()

		err := cache.AddLabel(ctx, models.LabelEntry{
			SubjectID: "volcano",
			Prompt:    "volcanic eruption cross section",
			Category:  "geology",
		})
		require.NoError(t, err)

		after := cache.Load()
		assert.Len(t, after.Entries, 4)
		assert.Equal(t, "volcano", after.Entries[3].SubjectID)

		// The old snapshot must be untouched for in-flight readers.
		assert.Len(t, before.Entries, 3)
	})

	t.Run("RejectsDuplicate", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		cache := newTestCache(t, stub)

		err := cache.AddLabel(ctx, models.LabelEntry{
			SubjectID: "heart",
			Prompt:    "another heart prompt",
			Category:  "biology",
		})
		assert.ErrorContains(t, err, "duplicate subject id")
		assert.Len(t, cache.Load().Entries, 3)
	})

	t.Run("RejectsInvalidEntry", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		cache := newTestCache(t, stub)

		err := cache.AddLabel(ctx, models.LabelEntry{SubjectID: "volcano"})
		assert.Error(t, err)
		assert.Len(t, cache.Load().Entries, 3)
	})

	t.Run("PinsDimensions", func(t *testing.T) {
		stub := testutils.NewStubEmbeddings(8)
		cache := newTestCache(t, stub)
		stub.TextVectors["short prompt"] = models.EmbeddingVector{1, 0}

		err := cache.AddLabel(ctx, models.LabelEntry{
			SubjectID: "volcano",
			Prompt:    "short prompt",
			Category:  "geology",
		})
		assert.ErrorIs(t, err, models.ErrDimensionMismatch)
	})
}

func TestRemoveLabel(t *testing.T) {
	stub := testutils.NewStubEmbeddings(8)

	t.Run("RemovesAndPreservesOrder", func(t *testing.T) {
		cache := newTestCache(t, stub)
		require.NoError(t, cache.RemoveLabel("atom"))

		snapshot := cache.Load()
		require.Len(t, snapshot.Entries, 2)
		assert.Equal(t, "heart", snapshot.Entries[0].SubjectID)
		assert.Equal(t, "lever", snapshot.Entries[1].SubjectID)
		assert.Len(t, snapshot.Vectors, 2)
	})

	t.Run("UnknownSubject", func(t *testing.T) {
		cache := newTestCache(t, stub)
		err := cache.RemoveLabel("volcano")
		assert.ErrorContains(t, err, "unknown subject id")
	})
}
