package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/corona10/goimagehash"
	"github.com/google/uuid"

	"github.com/edulens/edulens/internal"
	"github.com/edulens/edulens/pkg/imaging"
)

var log = internal.GetLogger()

var ErrDuplicateSample = errors.New("duplicate sample")

// hashDistanceThreshold is the maximum perceptual-hash Hamming distance at
// which two images are considered duplicates.
const hashDistanceThreshold = 4

var categories = []string{"biology", "chemistry", "physics", "astronomy"}

// Sample is one admitted dataset entry, persisted as an annotation file.
type Sample struct {
	ID           string            `json:"id"`
	Filename     string            `json:"filename"`
	Subject      string            `json:"subject"`
	Category     string            `json:"category"`
	OriginalPath string            `json:"original_path"`
	DatasetPath  string            `json:"dataset_path"`
	PerceptHash  string            `json:"percept_hash"`
	AddedAt      time.Time         `json:"added_at"`
	Annotations  map[string]string `json:"annotations,omitempty"`
}

// Builder organizes labeled diagram images on disk for later evaluation
// runs. Duplicate images are rejected by perceptual hash so the dataset
// stays unique.
type Builder struct {
	basePath string
}

// NewBuilder creates the dataset directory structure under basePath.
func NewBuilder(basePath string) (*Builder, error) {
	dirs := []string{"annotations", "metadata"}
	for _, category := range categories {
		dirs = append(dirs, filepath.Join("raw", category))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(basePath, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create dataset directory: %w", err)
		}
	}
	return &Builder{basePath: basePath}, nil
}

// AddSample admits one labeled image into the dataset: the file is hashed,
// checked against existing samples for near-duplicates, copied under
// raw/<category>/, and described by an annotation file.
func (b *Builder) AddSample(
	imagePath, subject, category string,
	annotations map[string]string,
) (*Sample, error) {
	if err := imaging.ValidateFilename(imagePath); err != nil {
		return nil, err
	}
	if !validCategory(category) {
		return nil, fmt.Errorf("unknown category %q", category)
	}

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read sample image: %w", err)
	}

	hash, err := perceptHash(data)
	if err != nil {
		return nil, fmt.Errorf("hash sample image: %w", err)
	}
	if dup, err := b.findDuplicate(hash); err != nil {
		return nil, err
	} else if dup != nil {
		return nil, fmt.Errorf("%w of %s", ErrDuplicateSample, dup.Filename)
	}

	id := uuid.New().String()
	filename := fmt.Sprintf(
		"%s_%s_%s%s",
		subject,
		time.Now().Format("20060102_150405"),
		id[:8],
		strings.ToLower(filepath.Ext(imagePath)),
	)
	destPath := filepath.Join(b.basePath, "raw", category, filename)
	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("copy sample image: %w", err)
	}

	sample := &Sample{
		ID:           id,
		Filename:     filename,
		Subject:      subject,
		Category:     category,
		OriginalPath: imagePath,
		DatasetPath:  destPath,
		PerceptHash:  hash.ToString(),
		AddedAt:      time.Now().UTC(),
		Annotations:  annotations,
	}
	if err := b.writeAnnotation(sample); err != nil {
		return nil, err
	}

	log.Infof("added sample %s (%s/%s)", filename, category, subject)
	return sample, nil
}

// Manifest aggregates all annotation files into one document.
type Manifest struct {
	Created      time.Time                      `json:"created"`
	TotalSamples int                            `json:"total_samples"`
	Categories   map[string]map[string][]Sample `json:"categories"`
}

// CreateManifest scans annotations and writes the manifest under metadata/.
func (b *Builder) CreateManifest() (*Manifest, error) {
	samples, err := b.samples()
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Created:    time.Now().UTC(),
		Categories: make(map[string]map[string][]Sample),
	}
	for _, sample := range samples {
		bySubject := manifest.Categories[sample.Category]
		if bySubject == nil {
			bySubject = make(map[string][]Sample)
			manifest.Categories[sample.Category] = bySubject
		}
		bySubject[sample.Subject] = append(bySubject[sample.Subject], sample)
		manifest.TotalSamples++
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(b.basePath, "metadata", "dataset_manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}
	return manifest, nil
}

// Stats summarizes the dataset by category and subject.
type Stats struct {
	TotalSamples int            `json:"total_samples"`
	ByCategory   map[string]int `json:"by_category"`
	BySubject    map[string]int `json:"by_subject"`
}

func (b *Builder) Stats() (*Stats, error) {
	samples, err := b.samples()
	if err != nil {
		return nil, err
	}
	stats := &Stats{
		ByCategory: make(map[string]int),
		BySubject:  make(map[string]int),
	}
	for _, sample := range samples {
		stats.TotalSamples++
		stats.ByCategory[sample.Category]++
		stats.BySubject[sample.Subject]++
	}
	return stats, nil
}

func (b *Builder) samples() ([]Sample, error) {
	pattern := filepath.Join(b.basePath, "annotations", "*.json")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scan annotations: %w", err)
	}

	samples := make([]Sample, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read annotation %s: %w", path, err)
		}
		var sample Sample
		if err := json.Unmarshal(data, &sample); err != nil {
			return nil, fmt.Errorf("parse annotation %s: %w", path, err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func (b *Builder) findDuplicate(hash *goimagehash.ImageHash) (*Sample, error) {
	samples, err := b.samples()
	if err != nil {
		return nil, err
	}
	for i := range samples {
		existing, err := goimagehash.ImageHashFromString(samples[i].PerceptHash)
		if err != nil {
			continue
		}
		distance, err := hash.Distance(existing)
		if err != nil {
			continue
		}
		if distance <= hashDistanceThreshold {
			return &samples[i], nil
		}
	}
	return nil, nil
}

func (b *Builder) writeAnnotation(sample *Sample) error {
	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal annotation: %w", err)
	}
	name := strings.TrimSuffix(sample.Filename, filepath.Ext(sample.Filename)) + ".json"
	path := filepath.Join(b.basePath, "annotations", name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write annotation: %w", err)
	}
	return nil
}

func perceptHash(data []byte) (*goimagehash.ImageHash, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return goimagehash.AverageHash(img)
}

func validCategory(category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
