package classifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/edulens/edulens/pkg/models"
	"github.com/edulens/edulens/pkg/taxonomy"
)

// DefaultTemperature matches the effective logit scale of the pretrained
// CLIP model (cosine similarities multiplied by 100 before the softmax).
// Lower values sharpen the winner's confidence; higher values flatten the
// distribution toward uniform.
const DefaultTemperature = 0.01

// Score ranks every cached label against an image embedding. The image
// vector is unit-normalized, scored by dot product against the
// pre-normalized label vectors, and converted to a probability distribution
// with a temperature softmax. Confidence values sum to 1 across the label
// set. Ties are broken by taxonomy declaration order, not by score, so
// rankings stay reproducible when floats compare equal.
func Score(
	imageVector models.EmbeddingVector,
	snapshot *taxonomy.Snapshot,
	temperature float64,
) ([]models.Prediction, error) {
	if snapshot == nil || len(snapshot.Entries) == 0 {
		return nil, fmt.Errorf("label embedding cache is empty")
	}
	if temperature <= 0 {
		return nil, fmt.Errorf("temperature must be positive, got %v", temperature)
	}
	if len(imageVector) != snapshot.Dimensions {
		return nil, &models.DimensionMismatchError{
			Want: snapshot.Dimensions,
			Got:  len(imageVector),
		}
	}

	unit, err := models.L2Normalize(imageVector)
	if err != nil {
		return nil, err
	}

	predictions := make([]models.Prediction, len(snapshot.Entries))
	logits := make([]float64, len(snapshot.Entries))
	for i, labelVector := range snapshot.Vectors {
		similarity := models.Dot(unit, labelVector)
		predictions[i] = models.Prediction{
			SubjectID: snapshot.Entries[i].SubjectID,
			RawScore:  similarity,
		}
		logits[i] = similarity / temperature
	}

	for i, p := range softmax(logits) {
		predictions[i].Confidence = p
	}

	// Stable sort keeps declaration order for equal confidences.
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})

	return predictions, nil
}

// softmax with max subtraction for numerical stability at low temperatures.
func softmax(logits []float64) []float64 {
	maxLogit := math.Inf(-1)
	for _, l := range logits {
		if l > maxLogit {
			maxLogit = l
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
