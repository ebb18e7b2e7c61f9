package taxonomy

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/edulens/edulens/internal"
	"github.com/edulens/edulens/pkg/models"
)

var log = internal.GetLogger()

// Snapshot is an immutable view of the label embedding cache. Vectors are
// unit-normalized at build time so scoring reduces to a dot product. Entries
// and Vectors are index-aligned in taxonomy declaration order.
type Snapshot struct {
	Entries    []models.LabelEntry
	Vectors    []models.EmbeddingVector
	Dimensions int
}

// Cache holds the label embeddings for the classifier's lifetime. Reads go
// through an atomic pointer so concurrent classifications see either the old
// or the new snapshot in full, never a partially updated one. The snapshot is
// never mutated in place; label changes build a new one and swap.
type Cache struct {
	client   models.EmbeddingClient
	snapshot atomic.Pointer[Snapshot]
}

// BuildCache embeds every taxonomy prompt once and returns the cache ready
// for scoring. This is the only expensive initialization step in the core.
func BuildCache(
	ctx context.Context,
	client models.EmbeddingClient,
	t *Taxonomy,
) (*Cache, error) {
	c := &Cache{client: client}

	snapshot, err := c.buildSnapshot(ctx, t.Entries())
	if err != nil {
		return nil, err
	}
	c.snapshot.Store(snapshot)

	log.Infof("cached embeddings for %d subject labels", len(snapshot.Entries))
	return c, nil
}

// Load returns the current snapshot. The returned value must not be mutated.
func (c *Cache) Load() *Snapshot {
	return c.snapshot.Load()
}

// AddLabel embeds a single new label and atomically swaps in a snapshot with
// the label appended. In-flight classifications are not invalidated; the
// underlying model needs no retraining.
func (c *Cache) AddLabel(ctx context.Context, entry models.LabelEntry) error {
	current := c.snapshot.Load()

	for _, existing := range current.Entries {
		if existing.SubjectID == entry.SubjectID {
			return fmt.Errorf("duplicate subject id: %s", entry.SubjectID)
		}
	}
	if err := validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid label entry: %w", err)
	}

	vector, err := c.embedPrompt(ctx, entry, current.Dimensions)
	if err != nil {
		return err
	}

	next := &Snapshot{
		Entries:    append(append([]models.LabelEntry(nil), current.Entries...), entry),
		Vectors:    append(append([]models.EmbeddingVector(nil), current.Vectors...), vector),
		Dimensions: current.Dimensions,
	}
	c.snapshot.Store(next)

	log.Infof("added label %s, taxonomy now has %d subjects", entry.SubjectID, len(next.Entries))
	return nil
}

// RemoveLabel atomically swaps in a snapshot without the given subject.
func (c *Cache) RemoveLabel(subjectID string) error {
	current := c.snapshot.Load()

	idx := -1
	for i, entry := range current.Entries {
		if entry.SubjectID == subjectID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("unknown subject id: %s", subjectID)
	}

	next := &Snapshot{
		Entries:    make([]models.LabelEntry, 0, len(current.Entries)-1),
		Vectors:    make([]models.EmbeddingVector, 0, len(current.Vectors)-1),
		Dimensions: current.Dimensions,
	}
	for i := range current.Entries {
		if i == idx {
			continue
		}
		next.Entries = append(next.Entries, current.Entries[i])
		next.Vectors = append(next.Vectors, current.Vectors[i])
	}
	c.snapshot.Store(next)
	return nil
}

func (c *Cache) buildSnapshot(
	ctx context.Context,
	entries []models.LabelEntry,
) (*Snapshot, error) {
	snapshot := &Snapshot{
		Entries: entries,
		Vectors: make([]models.EmbeddingVector, len(entries)),
	}
	for i, entry := range entries {
		vector, err := c.embedPrompt(ctx, entry, snapshot.Dimensions)
		if err != nil {
			return nil, err
		}
		if snapshot.Dimensions == 0 {
			snapshot.Dimensions = len(vector)
		}
		snapshot.Vectors[i] = vector
	}
	return snapshot, nil
}

// embedPrompt embeds a label prompt and normalizes it to unit length.
// wantDimensions of 0 means the dimension is not yet pinned.
func (c *Cache) embedPrompt(
	ctx context.Context,
	entry models.LabelEntry,
	wantDimensions int,
) (models.EmbeddingVector, error) {
	vector, err := c.client.EmbedText(ctx, entry.Prompt)
	if err != nil {
		return nil, models.NewEmbeddingError(
			fmt.Sprintf("embed label prompt %q", entry.Prompt), err,
		)
	}
	if wantDimensions != 0 && len(vector) != wantDimensions {
		return nil, &models.DimensionMismatchError{Want: wantDimensions, Got: len(vector)}
	}
	unit, err := models.L2Normalize(vector)
	if err != nil {
		return nil, fmt.Errorf("label %s: %w", entry.SubjectID, err)
	}
	return unit, nil
}
