package models

// EvaluationSample is one labeled dataset entry.
type EvaluationSample struct {
	ImageRef      string `json:"image_ref"       validate:"required"`
	TrueSubjectID string `json:"true_subject_id" validate:"required"`
}

// ClassMetrics holds per-class quality figures derived from the confusion
// matrix. Defined is false for classes with neither true nor predicted
// occurrences; their precision/recall are reported as zero rather than
// raising a division error, and such classes are flagged distinctly.
type ClassMetrics struct {
	TruePositives  int     `json:"true_positives"`
	FalsePositives int     `json:"false_positives"`
	FalseNegatives int     `json:"false_negatives"`
	Support        int     `json:"support"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	F1             float64 `json:"f1"`
	Defined        bool    `json:"defined"`
}

// CalibrationBucket reports observed accuracy for predictions whose stated
// confidence fell into [Low, High). Used to validate that confidence tracks
// real correctness under the chosen softmax temperature.
type CalibrationBucket struct {
	Low           float64 `json:"low"`
	High          float64 `json:"high"`
	Count         int     `json:"count"`
	Accuracy      float64 `json:"accuracy"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// EvaluationReport is immutable once produced. SkippedCount is tracked
// separately from accuracy figures so failed samples never silently inflate
// accuracy.
type EvaluationReport struct {
	SampleCount  int                       `json:"sample_count"`
	SkippedCount int                       `json:"skipped_count"`
	Accuracy     float64                   `json:"accuracy"`
	TopK         int                       `json:"top_k"`
	TopKAccuracy float64                   `json:"top_k_accuracy"`
	Confusion    map[string]map[string]int `json:"confusion"`
	Classes      map[string]ClassMetrics   `json:"classes"`
	Calibration  []CalibrationBucket       `json:"calibration"`
}
