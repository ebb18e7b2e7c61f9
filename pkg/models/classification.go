package models

// Prediction is one label's score for a single image. RawScore is cosine
// similarity in [-1, 1]; Confidence is the softmax-normalized probability,
// summing to 1 across the full label set.
type Prediction struct {
	SubjectID  string  `json:"subject_id"`
	RawScore   float64 `json:"raw_score"`
	Confidence float64 `json:"confidence"`
}

// ClassificationResult is the ranked outcome of classifying one image.
// Predictions are sorted by confidence descending, truncated to the caller's
// top-k, with the winner promoted for convenience.
type ClassificationResult struct {
	PredictedSubject string       `json:"predicted_subject"`
	Confidence       float64      `json:"confidence"`
	Predictions      []Prediction `json:"predictions"`
}

const (
	BatchStatusSuccess = "success"
	BatchStatusError   = "error"
)

// BatchItem is a single input to a batch classification run.
type BatchItem struct {
	ImageRef string `json:"image_ref"`
	Data     []byte `json:"-"`
}

// BatchItemResult is the tagged per-item outcome of a batch run. A failed
// item carries the error detail; it never aborts the surrounding batch.
type BatchItemResult struct {
	ImageRef       string                `json:"image_ref"`
	Status         string                `json:"status"`
	Classification *ClassificationResult `json:"classification,omitempty"`
	Recommendation *Recommendation       `json:"recommendation,omitempty"`
	Error          string                `json:"error,omitempty"`
}
