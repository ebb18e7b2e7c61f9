package models

// LabelEntry is a single subject in the classification taxonomy. Prompt is
// the natural-language description embedded by the text encoder; SubjectID is
// the short identifier the rest of the system keys on.
type LabelEntry struct {
	SubjectID string `json:"subject_id" validate:"required"`
	Prompt    string `json:"prompt"     validate:"required"`
	Category  string `json:"category"`
}
