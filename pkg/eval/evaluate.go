package eval

import (
	"context"
	"os"

	"github.com/edulens/edulens/internal"
	"github.com/edulens/edulens/pkg/classifier"
	"github.com/edulens/edulens/pkg/models"
)

var log = internal.GetLogger()

const (
	DefaultTopK            = 3
	DefaultCalibrationBins = 10
)

// ImageLoader resolves a manifest image reference to raw image bytes.
type ImageLoader func(ref string) ([]byte, error)

// FileLoader reads image references as filesystem paths.
func FileLoader(ref string) ([]byte, error) {
	return os.ReadFile(ref)
}

// Options tune an evaluation run. Zero values fall back to defaults.
type Options struct {
	TopK            int
	CalibrationBins int
	Loader          ImageLoader
}

type observation struct {
	trueSubject string
	predicted   string
	confidence  float64
	topK        []string
}

// Evaluate runs the classifier over a labeled dataset and derives aggregate
// and per-class quality metrics. A sample the classifier cannot process is
// recorded as skipped and never aborts the run; the report counts skips
// separately so they cannot inflate accuracy.
func Evaluate(
	ctx context.Context,
	c *classifier.Classifier,
	samples []models.EvaluationSample,
	opts Options,
) (*models.EvaluationReport, error) {
	if opts.TopK <= 0 {
		opts.TopK = DefaultTopK
	}
	if opts.CalibrationBins <= 0 {
		opts.CalibrationBins = DefaultCalibrationBins
	}
	if opts.Loader == nil {
		opts.Loader = FileLoader
	}

	var observations []observation
	skipped := 0
	for _, sample := range samples {
		data, err := opts.Loader(sample.ImageRef)
		if err != nil {
			log.Warnf("skipping sample %s: %v", sample.ImageRef, err)
			skipped++
			continue
		}
		result, err := c.Classify(ctx, data, opts.TopK)
		if err != nil {
			log.Warnf("skipping sample %s: %v", sample.ImageRef, err)
			skipped++
			continue
		}

		topK := make([]string, len(result.Predictions))
		for i, p := range result.Predictions {
			topK[i] = p.SubjectID
		}
		observations = append(observations, observation{
			trueSubject: sample.TrueSubjectID,
			predicted:   result.PredictedSubject,
			confidence:  result.Confidence,
			topK:        topK,
		})
	}

	classSet := make([]string, 0, len(c.Labels()))
	for _, entry := range c.Labels() {
		classSet = append(classSet, entry.SubjectID)
	}

	report := buildReport(observations, classSet, opts)
	report.SkippedCount = skipped
	return report, nil
}

func buildReport(
	observations []observation,
	classSet []string,
	opts Options,
) *models.EvaluationReport {
	report := &models.EvaluationReport{
		SampleCount: len(observations),
		TopK:        opts.TopK,
		Confusion:   make(map[string]map[string]int),
		Classes:     make(map[string]models.ClassMetrics),
	}

	correct := 0
	topKCorrect := 0
	for _, o := range observations {
		if report.Confusion[o.trueSubject] == nil {
			report.Confusion[o.trueSubject] = make(map[string]int)
		}
		report.Confusion[o.trueSubject][o.predicted]++

		if o.predicted == o.trueSubject {
			correct++
		}
		for _, subject := range o.topK {
			if subject == o.trueSubject {
				topKCorrect++
				break
			}
		}
	}
	if len(observations) > 0 {
		report.Accuracy = float64(correct) / float64(len(observations))
		report.TopKAccuracy = float64(topKCorrect) / float64(len(observations))
	}

	// Classes observed outside the declared taxonomy (a manifest labeled
	// against a newer label set) still get metrics.
	seen := make(map[string]bool, len(classSet))
	classes := append([]string(nil), classSet...)
	for _, class := range classSet {
		seen[class] = true
	}
	for _, o := range observations {
		if !seen[o.trueSubject] {
			seen[o.trueSubject] = true
			classes = append(classes, o.trueSubject)
		}
	}

	for _, class := range classes {
		report.Classes[class] = classMetrics(observations, class)
	}

	report.Calibration = calibration(observations, opts.CalibrationBins)
	return report
}

// classMetrics derives precision, recall, and F1 for one class from the raw
// observations. A class with neither true nor predicted occurrences is
// flagged Defined=false instead of producing a division error.
func classMetrics(observations []observation, class string) models.ClassMetrics {
	var m models.ClassMetrics
	for _, o := range observations {
		switch {
		case o.trueSubject == class && o.predicted == class:
			m.TruePositives++
		case o.trueSubject != class && o.predicted == class:
			m.FalsePositives++
		case o.trueSubject == class && o.predicted != class:
			m.FalseNegatives++
		}
	}
	m.Support = m.TruePositives + m.FalseNegatives

	predicted := m.TruePositives + m.FalsePositives
	if predicted == 0 && m.Support == 0 {
		return m
	}
	m.Defined = true

	if predicted > 0 {
		m.Precision = float64(m.TruePositives) / float64(predicted)
	}
	if m.Support > 0 {
		m.Recall = float64(m.TruePositives) / float64(m.Support)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// calibration buckets top-1 predictions by stated confidence and reports
// observed accuracy per bucket. Well-calibrated confidence tracks the
// diagonal; systematic deviation means the softmax temperature is off.
func calibration(observations []observation, bins int) []models.CalibrationBucket {
	buckets := make([]models.CalibrationBucket, bins)
	counts := make([]int, bins)
	hits := make([]int, bins)
	sums := make([]float64, bins)

	for i := range buckets {
		buckets[i].Low = float64(i) / float64(bins)
		buckets[i].High = float64(i+1) / float64(bins)
	}

	for _, o := range observations {
		idx := int(o.confidence * float64(bins))
		// Confidence 1.0 lands in the top bucket.
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
		sums[idx] += o.confidence
		if o.predicted == o.trueSubject {
			hits[idx]++
		}
	}

	for i := range buckets {
		buckets[i].Count = counts[i]
		if counts[i] > 0 {
			buckets[i].Accuracy = float64(hits[i]) / float64(counts[i])
			buckets[i].AvgConfidence = sums[i] / float64(counts[i])
		}
	}
	return buckets
}
