package models

// Decision is the terminal state of the recommendation policy for a request.
type Decision string

const (
	DecisionAuto         Decision = "auto"
	DecisionManualReview Decision = "manual_review"
)

// Reasons attached to recommendation decisions.
const (
	ReasonAboveThreshold = "confidence above threshold"
	ReasonLowConfidence  = "low confidence"
	ReasonNoAssetMapped  = "no asset mapped"
)

// Recommendation is the final object the pipeline emits for a classified
// image. On a manual-review decision the asset may still be attached to aid
// a human reviewer, but it is not a system-endorsed recommendation.
type Recommendation struct {
	Classification *ClassificationResult `json:"classification"`
	Asset          *ModelAsset           `json:"asset,omitempty"`
	Decision       Decision              `json:"decision"`
	Reason         string                `json:"reason"`
}
