package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edulens/edulens/config"
	"github.com/edulens/edulens/pkg/assets"
	"github.com/edulens/edulens/pkg/classifier"
	"github.com/edulens/edulens/pkg/dataset"
	"github.com/edulens/edulens/pkg/embeddings"
	"github.com/edulens/edulens/pkg/eval"
	"github.com/edulens/edulens/pkg/imaging"
	"github.com/edulens/edulens/pkg/models"
	"github.com/edulens/edulens/pkg/recommend"
	"github.com/edulens/edulens/pkg/taxonomy"
	"github.com/edulens/edulens/pkg/testutils"
)

// pipeline bundles the fully-wired classification stack for a CLI run.
type pipeline struct {
	appState   *models.AppState
	classifier *classifier.Classifier
	mapper     *assets.Mapper
}

// NewAppState creates an AppState struct from the config file / ENV and
// creates the embedding client.
func NewAppState(cfg *config.Config) *models.AppState {
	client, err := embeddings.NewClient(cfg)
	if err != nil {
		log.Fatalf("Error creating embedding client: %s", err)
	}
	return &models.AppState{
		EmbeddingClient: client,
		Config:          cfg,
	}
}

func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring edulens: %s", err)
	}
	config.SetLogLevel(cfg)
	return cfg
}

// newPipeline loads config, builds the label embedding cache, and wires the
// classifier and asset mapper. The cache build is the only expensive step:
// one text embedding per taxonomy label.
func newPipeline(ctx context.Context) *pipeline {
	cfg := loadConfig()
	appState := NewAppState(cfg)

	tax := taxonomy.Default()
	if cfg.Classifier.TaxonomyPath != "" {
		var err error
		tax, err = taxonomy.LoadFile(cfg.Classifier.TaxonomyPath)
		if err != nil {
			log.Fatalf("Error loading taxonomy: %s", err)
		}
	}

	cache, err := taxonomy.BuildCache(ctx, appState.EmbeddingClient, tax)
	if err != nil {
		log.Fatalf("Error building label embedding cache: %s", err)
	}

	cls := classifier.New(appState.EmbeddingClient, cache, classifier.Options{
		Temperature: cfg.Classifier.Temperature,
		TopK:        cfg.Classifier.TopK,
		Preparer:    imaging.NewPreparer(cfg.Classifier.ImageSize),
	})

	mapper := assets.Default()
	if cfg.Assets.MetadataPath != "" {
		mapper, err = assets.LoadFile(cfg.Assets.MetadataPath)
		if err != nil {
			log.Fatalf("Error loading asset metadata: %s", err)
		}
	}

	return &pipeline{
		appState:   appState,
		classifier: cls,
		mapper:     mapper,
	}
}

func (p *pipeline) threshold() float64 {
	if minConfidence > 0 {
		return minConfidence
	}
	return p.appState.Config.Classifier.MinConfidence
}

// runClassify classifies one image and prints the full recommendation.
func runClassify(imagePath string) {
	ctx := context.Background()
	p := newPipeline(ctx)

	if err := imaging.ValidateFilename(imagePath); err != nil {
		log.Fatalf("Error validating image: %s", err)
	}
	data, err := os.ReadFile(imagePath)
	if err != nil {
		log.Fatalf("Error reading image: %s", err)
	}

	result, err := p.classifier.Classify(ctx, data, topK)
	if err != nil {
		log.Fatalf("Error classifying image: %s", err)
	}

	recommendation := recommend.Decide(result, p.mapper, p.threshold())
	printJSON(recommendation)
}

// runBatch classifies many images; one bad file never loses the rest.
func runBatch(paths []string) {
	ctx := context.Background()
	p := newPipeline(ctx)
	cfg := p.appState.Config

	items := make([]models.BatchItem, len(paths))
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			// The runner records unreadable items as failures in-place.
			log.Warnf("unreadable image %s: %v", path, err)
		}
		items[i] = models.BatchItem{ImageRef: path, Data: data}
	}

	runner := classifier.NewBatchRunner(
		p.classifier,
		cfg.Batch.MaxConcurrency,
		cfg.Batch.ItemTimeout,
	)
	results := runner.Run(ctx, items, topK)

	threshold := p.threshold()
	for i := range results {
		if results[i].Status != models.BatchStatusSuccess {
			continue
		}
		recommendation := recommend.Decide(results[i].Classification, p.mapper, threshold)
		results[i].Recommendation = &recommendation
	}
	printJSON(results)
}

// runEvaluate scores the classifier against a labeled manifest.
func runEvaluate() {
	ctx := context.Background()
	p := newPipeline(ctx)
	cfg := p.appState.Config

	samples, err := eval.LoadManifest(manifestPath)
	if err != nil {
		log.Fatalf("Error loading manifest: %s", err)
	}

	k := topK
	if k <= 0 {
		k = cfg.Eval.TopK
	}
	report, err := eval.Evaluate(ctx, p.classifier, samples, eval.Options{
		TopK:            k,
		CalibrationBins: cfg.Eval.CalibrationBins,
	})
	if err != nil {
		log.Fatalf("Error evaluating: %s", err)
	}
	printJSON(report)
}

func runDatasetAdd(imagePath string) {
	cfg := loadConfig()
	builder, err := dataset.NewBuilder(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Error opening dataset: %s", err)
	}
	sample, err := builder.AddSample(imagePath, sampleSubject, sampleCategory, nil)
	if err != nil {
		log.Fatalf("Error adding sample: %s", err)
	}
	printJSON(sample)
}

func runDatasetManifest() {
	cfg := loadConfig()
	builder, err := dataset.NewBuilder(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Error opening dataset: %s", err)
	}
	manifest, err := builder.CreateManifest()
	if err != nil {
		log.Fatalf("Error creating manifest: %s", err)
	}
	fmt.Printf("Manifest created with %d samples.\n", manifest.TotalSamples)
}

func runDatasetStats() {
	cfg := loadConfig()
	builder, err := dataset.NewBuilder(cfg.Dataset.Path)
	if err != nil {
		log.Fatalf("Error opening dataset: %s", err)
	}
	stats, err := builder.Stats()
	if err != nil {
		log.Fatalf("Error computing stats: %s", err)
	}
	printJSON(stats)
}

// runCreateFixtures writes a synthetic labeled manifest for load-style
// testing of the evaluation harness.
func runCreateFixtures(count int, outputDir string) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.Fatalf("Error creating output dir: %s", err)
	}
	subjects := taxonomy.Default().SubjectIDs()
	samples := testutils.GenerateEvaluationSamples(count, subjects)
	path := filepath.Join(outputDir, "evaluation_manifest.json")
	if err := eval.WriteManifest(path, samples); err != nil {
		log.Fatalf("Error writing fixtures: %s", err)
	}
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling output: %s", err)
	}
	fmt.Println(string(data))
}
