package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/edulens/edulens/pkg/models"
)

var validate = validator.New()

// Taxonomy is the ordered, immutable set of subjects the classifier can
// predict. Declaration order is significant: it breaks confidence ties
// deterministically.
type Taxonomy struct {
	entries []models.LabelEntry
	index   map[string]int
}

// New builds a Taxonomy from entries, validating that every subject id is
// unique and every prompt non-empty.
func New(entries []models.LabelEntry) (*Taxonomy, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("taxonomy must contain at least one label")
	}
	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid label entry %d: %w", i, err)
		}
		if _, exists := index[entry.SubjectID]; exists {
			return nil, fmt.Errorf("duplicate subject id: %s", entry.SubjectID)
		}
		index[entry.SubjectID] = i
	}
	return &Taxonomy{
		entries: append([]models.LabelEntry(nil), entries...),
		index:   index,
	}, nil
}

// LoadFile reads a taxonomy from a JSON array of label entries.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file: %w", err)
	}
	var entries []models.LabelEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse taxonomy file: %w", err)
	}
	return New(entries)
}

// Entries returns the labels in declaration order.
func (t *Taxonomy) Entries() []models.LabelEntry {
	return append([]models.LabelEntry(nil), t.entries...)
}

func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Lookup returns the entry for a subject id.
func (t *Taxonomy) Lookup(subjectID string) (models.LabelEntry, bool) {
	i, ok := t.index[subjectID]
	if !ok {
		return models.LabelEntry{}, false
	}
	return t.entries[i], true
}

// SubjectIDs returns all subject ids in declaration order.
func (t *Taxonomy) SubjectIDs() []string {
	ids := make([]string, len(t.entries))
	for i, entry := range t.entries {
		ids[i] = entry.SubjectID
	}
	return ids
}
