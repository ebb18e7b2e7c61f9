package models

// ModelAsset describes the 3D content recommended for a subject. The JSON
// field names follow the asset metadata table on disk.
type ModelAsset struct {
	SubjectID           string   `json:"subject_id"            validate:"required"`
	File                string   `json:"file"                  validate:"required"`
	DisplayName         string   `json:"display_name"          validate:"required"`
	Category            string   `json:"subject_category"`
	Difficulty          string   `json:"difficulty_level"`
	Animations          []string `json:"animations"`
	InteractiveFeatures []string `json:"interactive_features"`
	Tags                []string `json:"educational_tags"`
	Description         string   `json:"description"`
	RecommendedAge      string   `json:"recommended_age"`
}

// Difficulty levels used by the asset table.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)
