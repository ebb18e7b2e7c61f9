package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edulens/edulens/config"
	"github.com/edulens/edulens/internal"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool

	topK          int
	minConfidence float64
	manifestPath  string

	sampleSubject  string
	sampleCategory string

	fixtureCount int
	fixtureDir   string
)

var cmd = &cobra.Command{
	Use:   "edulens",
	Short: "edulens classifies educational diagrams and recommends matching 3D learning content",
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(config.VersionString)
			return
		}
		_ = cmd.Help()
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <image>",
	Short: "Classify a single diagram image and print the recommendation",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runClassify(args[0])
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <image>...",
	Short: "Classify many diagram images with per-item failure isolation",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(args)
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run the classifier over a labeled manifest and report quality metrics",
	Run: func(cmd *cobra.Command, args []string) {
		runEvaluate()
	},
}

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Dataset collection utilities",
}

var datasetAddCmd = &cobra.Command{
	Use:   "add <image>",
	Short: "Add a labeled sample image to the dataset",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDatasetAdd(args[0])
	},
}

var datasetManifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Aggregate dataset annotations into a manifest",
	Run: func(cmd *cobra.Command, args []string) {
		runDatasetManifest()
	},
}

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset statistics",
	Run: func(cmd *cobra.Command, args []string) {
		runDatasetStats()
	},
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test utilities",
}

var createFixturesCmd = &cobra.Command{
	Use:   "create-fixtures",
	Short: "Create synthetic evaluation manifests for testing",
	Run: func(cmd *cobra.Command, args []string) {
		runCreateFixtures(fixtureCount, fixtureDir)
		fmt.Println("Fixtures created successfully.")
	},
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for edulens's configuration file",
	Example: "edulens json-schema > edulens_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

func init() {
	datasetCmd.AddCommand(datasetAddCmd)
	datasetCmd.AddCommand(datasetManifestCmd)
	datasetCmd.AddCommand(datasetStatsCmd)
	testCmd.AddCommand(createFixturesCmd)

	cmd.AddCommand(classifyCmd)
	cmd.AddCommand(batchCmd)
	cmd.AddCommand(evaluateCmd)
	cmd.AddCommand(datasetCmd)
	cmd.AddCommand(testCmd)
	cmd.AddCommand(dumpJsonSchemaCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")

	classifyCmd.Flags().IntVarP(&topK, "top-k", "k", 0, "number of predictions to return")
	classifyCmd.Flags().
		Float64Var(&minConfidence, "min-confidence", 0, "confidence threshold for auto recommendation")
	batchCmd.Flags().IntVarP(&topK, "top-k", "k", 0, "number of predictions per image")
	batchCmd.Flags().
		Float64Var(&minConfidence, "min-confidence", 0, "confidence threshold for auto recommendation")
	evaluateCmd.Flags().
		StringVarP(&manifestPath, "manifest", "m", "", "labeled dataset manifest (required)")
	_ = evaluateCmd.MarkFlagRequired("manifest")
	evaluateCmd.Flags().IntVarP(&topK, "top-k", "k", 0, "k for top-k accuracy")

	datasetAddCmd.Flags().StringVar(&sampleSubject, "subject", "", "subject id (required)")
	datasetAddCmd.Flags().StringVar(&sampleCategory, "category", "", "category (required)")
	_ = datasetAddCmd.MarkFlagRequired("subject")
	_ = datasetAddCmd.MarkFlagRequired("category")

	createFixturesCmd.Flags().
		IntVar(&fixtureCount, "count", 100, "Number of manifest entries to generate")
	createFixturesCmd.Flags().
		StringVar(&fixtureDir, "outputDir", "./test_data", "Path to output fixtures")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
