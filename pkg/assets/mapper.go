package assets

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edulens/edulens/pkg/models"
)

var validate = validator.New()

// Mapper resolves subjects to 3D asset metadata. The full table is loaded
// once at startup and is read-only thereafter; every query is a pure read.
type Mapper struct {
	assets []models.ModelAsset
	index  map[string]int
}

// NewMapper builds a Mapper from a fully-loaded asset table.
func NewMapper(assets []models.ModelAsset) (*Mapper, error) {
	index := make(map[string]int, len(assets))
	for i, asset := range assets {
		if err := validate.Struct(asset); err != nil {
			return nil, fmt.Errorf("invalid asset record %d: %w", i, err)
		}
		if _, exists := index[asset.SubjectID]; exists {
			return nil, fmt.Errorf("duplicate asset subject id: %s", asset.SubjectID)
		}
		index[asset.SubjectID] = i
	}
	return &Mapper{
		assets: append([]models.ModelAsset(nil), assets...),
		index:  index,
	}, nil
}

// LoadFile reads an asset table from a JSON array of asset records.
// Array order is the table's declaration order.
func LoadFile(path string) (*Mapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset metadata: %w", err)
	}
	var assets []models.ModelAsset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("parse asset metadata: %w", err)
	}
	return NewMapper(assets)
}

// Get resolves the asset for a subject. A missing mapping returns an
// AssetNotFoundError; callers treat this as recoverable, not a crash.
func (m *Mapper) Get(subjectID string) (models.ModelAsset, error) {
	i, ok := m.index[subjectID]
	if !ok {
		return models.ModelAsset{}, models.NewAssetNotFoundError(subjectID)
	}
	return m.assets[i], nil
}

// ByCategory returns all assets in a category, in declaration order.
func (m *Mapper) ByCategory(category string) []models.ModelAsset {
	return m.filter(func(a models.ModelAsset) bool {
		return a.Category == category
	})
}

// ByDifficulty returns all assets at a difficulty level.
func (m *Mapper) ByDifficulty(level string) []models.ModelAsset {
	return m.filter(func(a models.ModelAsset) bool {
		return a.Difficulty == level
	})
}

// ByTag returns all assets carrying an educational tag, case-insensitively.
func (m *Mapper) ByTag(tag string) []models.ModelAsset {
	return m.filter(func(a models.ModelAsset) bool {
		for _, t := range a.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	})
}

// Relevance weights for Search. Display name matches rank above tag matches,
// which rank above description matches.
const (
	searchWeightName        = 3
	searchWeightTag         = 2
	searchWeightDescription = 1
)

// Search matches query case-insensitively as a substring of display name,
// tags, and description, ordered by relevance then declaration order.
func (m *Mapper) Search(query string) []models.ModelAsset {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	type match struct {
		asset  models.ModelAsset
		weight int
	}
	var matches []match
	for _, asset := range m.assets {
		weight := 0
		if strings.Contains(strings.ToLower(asset.DisplayName), query) {
			weight = searchWeightName
		} else if tagContains(asset.Tags, query) {
			weight = searchWeightTag
		} else if strings.Contains(strings.ToLower(asset.Description), query) {
			weight = searchWeightDescription
		}
		if weight > 0 {
			matches = append(matches, match{asset: asset, weight: weight})
		}
	}

	// Stable sort keeps declaration order within a relevance band.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].weight > matches[j].weight
	})

	results := make([]models.ModelAsset, len(matches))
	for i, m := range matches {
		results[i] = m.asset
	}
	return results
}

// Subjects returns every mapped subject id in declaration order.
func (m *Mapper) Subjects() []string {
	ids := make([]string, len(m.assets))
	for i, asset := range m.assets {
		ids[i] = asset.SubjectID
	}
	return ids
}

// Categories returns the distinct categories in declaration order.
func (m *Mapper) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, asset := range m.assets {
		if asset.Category == "" || seen[asset.Category] {
			continue
		}
		seen[asset.Category] = true
		categories = append(categories, asset.Category)
	}
	return categories
}

func (m *Mapper) Len() int {
	return len(m.assets)
}

func (m *Mapper) filter(keep func(models.ModelAsset) bool) []models.ModelAsset {
	var out []models.ModelAsset
	for _, asset := range m.assets {
		if keep(asset) {
			out = append(out, asset)
		}
	}
	return out
}

func tagContains(tags []string, query string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}
