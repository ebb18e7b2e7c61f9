package recommend

import (
	"github.com/edulens/edulens/pkg/models"
)

// DefaultMinConfidence is the threshold below which a classification is
// routed to manual review. Callers supply their own per deployment.
const DefaultMinConfidence = 0.7

// AssetResolver resolves a subject id to asset metadata. pkg/assets.Mapper
// is the production implementation.
type AssetResolver interface {
	Get(subjectID string) (models.ModelAsset, error)
}

// Decide is a pure function of (confidence, asset resolvability, threshold)
// with two terminal states per request: auto or manual review.
//
// An unresolvable asset forces manual review regardless of confidence: a
// confident label with nothing to recommend is not actionable. Below the
// threshold the asset is still attached when resolvable, to aid a human
// reviewer, but the decision stays manual review.
func Decide(
	classification *models.ClassificationResult,
	resolver AssetResolver,
	minConfidence float64,
) models.Recommendation {
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}

	recommendation := models.Recommendation{
		Classification: classification,
	}

	asset, err := resolver.Get(classification.PredictedSubject)
	if err != nil {
		recommendation.Decision = models.DecisionManualReview
		recommendation.Reason = models.ReasonNoAssetMapped
		return recommendation
	}
	recommendation.Asset = &asset

	if classification.Confidence < minConfidence {
		recommendation.Decision = models.DecisionManualReview
		recommendation.Reason = models.ReasonLowConfidence
		return recommendation
	}

	recommendation.Decision = models.DecisionAuto
	recommendation.Reason = models.ReasonAboveThreshold
	return recommendation
}
