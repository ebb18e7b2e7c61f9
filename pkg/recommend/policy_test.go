package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulens/edulens/pkg/models"
	"github.com/edulens/edulens/pkg/testutils"
)

// mapResolver resolves from a fixed table; anything unmapped returns
// AssetNotFoundError like the production mapper does.
type mapResolver map[string]models.ModelAsset

func (r mapResolver) Get(subjectID string) (models.ModelAsset, error) {
	asset, ok := r[subjectID]
	if !ok {
		return models.ModelAsset{}, models.NewAssetNotFoundError(subjectID)
	}
	return asset, nil
}

func classificationOf(subject string, confidence float64) *models.ClassificationResult {
	return &models.ClassificationResult{
		PredictedSubject: subject,
		Confidence:       confidence,
		Predictions: []models.Prediction{
			{SubjectID: subject, Confidence: confidence},
		},
	}
}

func TestDecide(t *testing.T) {
	resolver := mapResolver{
		"heart": testutils.FakeAsset("heart"),
	}

	t.Run("ConfidentAndMappedIsAuto", func(t *testing.T) {
		rec := Decide(classificationOf("heart", 0.95), resolver, 0.7)
		assert.Equal(t, models.DecisionAuto, rec.Decision)
		assert.Equal(t, models.ReasonAboveThreshold, rec.Reason)
		require.NotNil(t, rec.Asset)
		assert.Equal(t, "heart", rec.Asset.SubjectID)
	})

	t.Run("UnmappedSubjectIsManualReviewEvenWhenConfident", func(t *testing.T) {
		rec := Decide(classificationOf("volcano", 0.95), resolver, 0.7)
		assert.Equal(t, models.DecisionManualReview, rec.Decision)
		assert.Equal(t, models.ReasonNoAssetMapped, rec.Reason)
		assert.Nil(t, rec.Asset)
	})

	t.Run("LowConfidenceIsManualReviewWithAssetAttached", func(t *testing.T) {
		rec := Decide(classificationOf("heart", 0.3), resolver, 0.7)
		assert.Equal(t, models.DecisionManualReview, rec.Decision)
		assert.Equal(t, models.ReasonLowConfidence, rec.Reason)
		require.NotNil(t, rec.Asset)
		assert.Equal(t, "heart", rec.Asset.SubjectID)
	})

	t.Run("MissingAssetOutranksLowConfidence", func(t *testing.T) {
		rec := Decide(classificationOf("volcano", 0.1), resolver, 0.7)
		assert.Equal(t, models.ReasonNoAssetMapped, rec.Reason)
	})

	t.Run("ThresholdIsExclusive", func(t *testing.T) {
		rec := Decide(classificationOf("heart", 0.7), resolver, 0.7)
		assert.Equal(t, models.DecisionAuto, rec.Decision)
	})

	t.Run("ZeroThresholdFallsBackToDefault", func(t *testing.T) {
		rec := Decide(classificationOf("heart", 0.5), resolver, 0)
		assert.Equal(t, models.DecisionManualReview, rec.Decision)
		assert.Equal(t, models.ReasonLowConfidence, rec.Reason)
	})

	t.Run("RecommendationCarriesClassification", func(t *testing.T) {
		classification := classificationOf("heart", 0.95)
		rec := Decide(classification, resolver, 0.7)
		assert.Same(t, classification, rec.Classification)
	})
}
