package mlengine_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/mlengine"
	"github.com/Abaneee/social-pulse/pipeline"
)

// trainingTable builds thirty posts whose engagement rate is fully
// determined by the platform, one platform per engagement level.
func trainingTable() *dataset.Table {
	t := dataset.New([]string{"Platform", "Caption_Length", "Engagement_Rate"})
	groups := []struct {
		platform string
		rate     float64
	}{
		{"Instagram", 1.0},
		{"TikTok", 5.0},
		{"X", 10.0},
	}
	for _, g := range groups {
		for i := 0; i < 10; i++ {
			t.Append(dataset.Row{"Platform": g.platform, "Caption_Length": 100.0, "Engagement_Rate": g.rate})
		}
	}
	return t
}

func TestTrainBothModels(t *testing.T) {
	table := trainingTable()
	store := mlengine.NewFileStore(t.TempDir())

	res, err := mlengine.Train(context.Background(), table, store, mlengine.ModelBoth)
	assert.NoError(t, err)
	assert.NoError(t, res.RegressionErr)
	assert.NoError(t, res.ClassificationErr)

	reg := res.Regression
	if reg == nil {
		t.Fatal("expected a regression report")
	}
	assert.Equal(t, []string{"Caption_Length", "Platform_Instagram", "Platform_TikTok", "Platform_X"}, reg.FeatureColumns)
	assert.Equal(t, 24, reg.TrainingSamples)
	assert.Equal(t, 6, reg.TestSamples)
	assert.InDelta(t, 1.0, reg.Metrics.R2, 0.01)
	assert.Less(t, reg.Metrics.MSE, 0.01)
	assert.Len(t, reg.Visualization.ScatterData, 6)
	for _, p := range reg.Visualization.ScatterData {
		assert.InDelta(t, p.Actual, p.Predicted, 0.1)
	}

	clf := res.Classification
	if clf == nil {
		t.Fatal("expected a classification report")
	}
	assert.Equal(t, []string{"Average", "High", "Low"}, clf.ClassNames)
	assert.Equal(t, 24, clf.TrainingSamples)
	assert.Equal(t, 6, clf.TestSamples)
	assert.Equal(t, 100.0, clf.Metrics.Accuracy)
	assert.Equal(t, 1.0, clf.Metrics.F1Score)
	assert.Equal(t, []mlengine.ConfusionRow{
		{Name: "Average", Counts: map[string]int{"Average": 2, "High": 0, "Low": 0}},
		{Name: "High", Counts: map[string]int{"Average": 0, "High": 2, "Low": 0}},
		{Name: "Low", Counts: map[string]int{"Average": 0, "High": 0, "Low": 2}},
	}, clf.Visualization.ConfusionMatrix)

	// both bundles were persisted
	regBundle, err := store.GetRegression()
	assert.NoError(t, err)
	assert.Equal(t, reg.Metrics, regBundle.Metrics)
	assert.False(t, regBundle.TrainedAt.IsZero())

	clfBundle, err := store.GetClassification()
	assert.NoError(t, err)
	assert.Equal(t, clf.ClassNames, clfBundle.ClassNames)
}

// TestTrainOnCleanedTable runs a raw upload through the full cleaning
// pass and trains on the result, the way the process+train endpoints
// chain in production.
func TestTrainOnCleanedTable(t *testing.T) {
	raw := dataset.New([]string{
		"Platform", "Content_Type", "Date", "Hour", "Caption_Length",
		"Hashtags", "Likes", "Comments", "Shares", "Saves", "Reach",
	})
	platforms := []string{"Instagram", "TikTok", "twitter"}
	contentTypes := []string{"Reel", "Post", "Story"}
	for i := 0; i < 100; i++ {
		raw.Append(dataset.Row{
			"Platform":       platforms[i%3],
			"Content_Type":   contentTypes[(i/3)%3],
			"Date":           fmt.Sprintf("%02d/03/2024", 1+i%28),
			"Hour":           float64(9 + i%12),
			"Caption_Length": float64(40 + i),
			"Hashtags":       fmt.Sprintf("#tag%d #growth", i%5),
			"Likes":          float64(100 + 10*i),
			"Comments":       float64(10 + i%7),
			"Shares":         float64(5 + i%5),
			"Saves":          float64(3 + i%4),
			"Reach":          float64(2000 + 25*i),
		})
	}

	cleaned := pipeline.Preprocess(raw, pipeline.Options{RemoveNulls: true, Deduplicate: true, StandardizeDates: true})
	assert.Equal(t, 100, cleaned.RowsAfter)
	assert.Contains(t, cleaned.Steps, "calculate_engagement")
	assert.True(t, cleaned.Table.HasColumn(dataset.ColEngagementRate))

	store := mlengine.NewFileStore(t.TempDir())
	res, err := mlengine.Train(context.Background(), cleaned.Table, store, mlengine.ModelRegression)
	assert.NoError(t, err)
	assert.NoError(t, res.RegressionErr)

	reg := res.Regression
	if reg == nil {
		t.Fatal("expected a regression report")
	}
	assert.Equal(t, []string{
		"Caption_Length", "Hour", "Day_of_Week",
		"Platform_Instagram", "Platform_TikTok", "Platform_X",
		"Content_Type_Post", "Content_Type_Reel", "Content_Type_Story",
	}, reg.FeatureColumns)
	assert.Equal(t, 80, reg.TrainingSamples)
	assert.Equal(t, 20, reg.TestSamples)
	assert.False(t, math.IsNaN(reg.Metrics.RMSE))
	assert.False(t, math.IsInf(reg.Metrics.RMSE, 0))
	assert.GreaterOrEqual(t, reg.Metrics.RMSE, 0.0)

	bundle, err := store.GetRegression()
	assert.NoError(t, err)
	assert.Equal(t, reg.FeatureColumns, bundle.FeatureColumns)
}

func TestTrainRegressionOnly(t *testing.T) {
	store := mlengine.NewFileStore(t.TempDir())

	res, err := mlengine.Train(context.Background(), trainingTable(), store, mlengine.ModelRegression)
	assert.NoError(t, err)
	assert.NotNil(t, res.Regression)
	assert.Nil(t, res.Classification)
	assert.NoError(t, res.ClassificationErr)

	_, err = store.GetClassification()
	assert.ErrorIs(t, err, mlengine.ErrModelNotFound)
}

func TestTrainIsDeterministic(t *testing.T) {
	table := trainingTable()

	first, err := mlengine.Train(context.Background(), table, mlengine.NewFileStore(t.TempDir()), mlengine.ModelBoth)
	assert.NoError(t, err)
	second, err := mlengine.Train(context.Background(), table, mlengine.NewFileStore(t.TempDir()), mlengine.ModelBoth)
	assert.NoError(t, err)

	assert.Equal(t, first.Regression.Metrics, second.Regression.Metrics)
	assert.Equal(t, first.Regression.Visualization, second.Regression.Visualization)
	assert.Equal(t, first.Classification.Metrics, second.Classification.Metrics)
}

func TestTrainRecordsPerModelErrors(t *testing.T) {
	table := dataset.New([]string{"Platform"})
	table.Append(dataset.Row{"Platform": "Instagram"})
	store := mlengine.NewFileStore(t.TempDir())

	// empty model type means both
	res, err := mlengine.Train(context.Background(), table, store, "")
	assert.NoError(t, err)
	assert.Nil(t, res.Regression)
	assert.Nil(t, res.Classification)
	assert.ErrorIs(t, res.RegressionErr, mlengine.ErrTargetMissing)
	assert.ErrorIs(t, res.ClassificationErr, mlengine.ErrTargetMissing)

	noFeatures := dataset.New([]string{"Engagement_Rate"})
	noFeatures.Append(dataset.Row{"Engagement_Rate": 5.0})

	res, err = mlengine.Train(context.Background(), noFeatures, store, mlengine.ModelRegression)
	assert.NoError(t, err)
	assert.ErrorIs(t, res.RegressionErr, mlengine.ErrNoFeatures)
}

func TestTrainRejectsUnknownModelType(t *testing.T) {
	res, err := mlengine.Train(context.Background(), trainingTable(), mlengine.NewFileStore(t.TempDir()), "banana")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, mlengine.ErrUnknownModelType)
}

func TestEngagementLevelBoundaries(t *testing.T) {
	assert.Equal(t, mlengine.LevelLow, mlengine.EngagementLevel(1.99))
	assert.Equal(t, mlengine.LevelAverage, mlengine.EngagementLevel(2.0))
	assert.Equal(t, mlengine.LevelAverage, mlengine.EngagementLevel(8.0))
	assert.Equal(t, mlengine.LevelHigh, mlengine.EngagementLevel(8.01))
}
