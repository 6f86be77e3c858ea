// Social Pulse batch CLI. Runs the cleaning pipeline, profiling,
// training and aggregations directly against a CSV on disk, without
// going through the API server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Abaneee/social-pulse/analytics"
	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/internal/logger"
	"github.com/Abaneee/social-pulse/mlengine"
	"github.com/Abaneee/social-pulse/pipeline"
)

var (
	flagLogLevel string
	flagOut      string

	cleanRemoveNulls      bool
	cleanDeduplicate      bool
	cleanStandardizeDates bool

	trainModelType string
	trainModelsDir string

	insightsPlatform    string
	insightsContentType string
	insightsModelsDir   string

	dashboardPlatform string
)

var rootCmd = &cobra.Command{
	Use:   "socialpulse",
	Short: "Analyze social post exports from the command line",
	Long: `socialpulse runs the Social Pulse analysis stages against a CSV export:
cleaning, profiling, model training and the insight/dashboard aggregations.
Results are printed as JSON.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(flagLogLevel)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean <input.csv>",
	Short: "Run the preprocessing pipeline over a CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}
		res := pipeline.Preprocess(t, pipeline.Options{
			RemoveNulls:      cleanRemoveNulls,
			Deduplicate:      cleanDeduplicate,
			StandardizeDates: cleanStandardizeDates,
		})
		if flagOut != "" {
			if err := dataset.WriteCSVFile(flagOut, res.Table); err != nil {
				return err
			}
			logger.Log.Infof("cleaned table written to %s", flagOut)
		}
		return printJSON(map[string]any{
			"cleaning_steps": res.Steps,
			"rows_removed":   res.RowsRemoved,
			"rows_after":     res.RowsAfter,
			"data_health":    res.Health,
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <input.csv>",
	Short: "Generate a column-by-column profiling report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}
		return printJSON(pipeline.GenerateProfile(t))
	},
}

var trainCmd = &cobra.Command{
	Use:   "train <input.csv>",
	Short: "Train engagement models and store the artifacts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}
		store := mlengine.NewFileStore(trainModelsDir)
		res, err := mlengine.Train(cmd.Context(), t, store, trainModelType)
		if err != nil {
			return err
		}
		out := map[string]any{}
		if res.Regression != nil {
			out[mlengine.ModelRegression] = res.Regression
		} else if res.RegressionErr != nil {
			out[mlengine.ModelRegression] = map[string]string{"error": res.RegressionErr.Error()}
		}
		if res.Classification != nil {
			out[mlengine.ModelClassification] = res.Classification
		} else if res.ClassificationErr != nil {
			out[mlengine.ModelClassification] = map[string]string{"error": res.ClassificationErr.Error()}
		}
		return printJSON(out)
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights <input.csv>",
	Short: "Build posting recommendations from a CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}
		var store mlengine.Store
		if insightsModelsDir != "" {
			store = mlengine.NewFileStore(insightsModelsDir)
		}
		return printJSON(analytics.BuildInsights(t, mlengine.Filter{
			Platform:    insightsPlatform,
			ContentType: insightsContentType,
		}, store))
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <input.csv>",
	Short: "Build the dashboard chart payload from a CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.ReadCSVFile(args[0])
		if err != nil {
			return err
		}
		return printJSON(analytics.BuildDashboard(t, dashboardPlatform))
	},
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cleanCmd.Flags().StringVar(&flagOut, "out", "", "write the cleaned table to this CSV file")
	cleanCmd.Flags().BoolVar(&cleanRemoveNulls, "remove-nulls", false, "drop rows missing engagement or platform, median-fill the rest")
	cleanCmd.Flags().BoolVar(&cleanDeduplicate, "dedupe", false, "drop exact duplicate rows")
	cleanCmd.Flags().BoolVar(&cleanStandardizeDates, "standardize-dates", false, "rewrite post dates as YYYY-MM-DD")

	trainCmd.Flags().StringVar(&trainModelType, "model-type", mlengine.ModelBoth, "regression, classification or both")
	trainCmd.Flags().StringVar(&trainModelsDir, "models-dir", "./media/models/cli", "directory for model artifacts")

	insightsCmd.Flags().StringVar(&insightsPlatform, "platform", "", "platform filter")
	insightsCmd.Flags().StringVar(&insightsContentType, "content-type", "", "content type filter")
	insightsCmd.Flags().StringVar(&insightsModelsDir, "models-dir", "", "read trained model artifacts from this directory")

	dashboardCmd.Flags().StringVar(&dashboardPlatform, "platform", "", "platform filter ('All' disables it)")

	rootCmd.AddCommand(cleanCmd, profileCmd, trainCmd, insightsCmd, dashboardCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
