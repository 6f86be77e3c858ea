package mlengine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/boost"
	"github.com/Abaneee/social-pulse/mlengine"
)

func TestFileStoreMissingBundles(t *testing.T) {
	store := mlengine.NewFileStore(t.TempDir())

	_, err := store.GetRegression()
	assert.ErrorIs(t, err, mlengine.ErrModelNotFound)

	_, err = store.GetClassification()
	assert.ErrorIs(t, err, mlengine.ErrModelNotFound)
}

func TestFileStoreRegressionRoundTrip(t *testing.T) {
	store := mlengine.NewFileStore(t.TempDir())

	model := boost.NewRegressor(boost.DefaultConfig())
	err := model.Fit(context.Background(), [][]float64{{0}, {1}, {2}, {3}}, []float64{0, 1, 2, 3})
	assert.NoError(t, err)

	bundle := &mlengine.RegressionBundle{
		Model:          model,
		FeatureColumns: []string{"Caption_Length"},
		Metrics:        mlengine.RegressionMetrics{MSE: 0.5, RMSE: 0.7071, R2: 0.9},
		TrainedAt:      time.Now().UTC(),
	}
	assert.NoError(t, store.PutRegression(bundle))

	loaded, err := store.GetRegression()
	assert.NoError(t, err)
	assert.Equal(t, bundle.FeatureColumns, loaded.FeatureColumns)
	assert.Equal(t, bundle.Metrics, loaded.Metrics)
	assert.Equal(t, model.Predict([]float64{2}), loaded.Model.Predict([]float64{2}))
}

func TestFileStoreClassificationRoundTrip(t *testing.T) {
	store := mlengine.NewFileStore(t.TempDir())

	model := boost.NewClassifier(boost.DefaultConfig())
	x := [][]float64{{0}, {1}, {10}, {11}}
	err := model.Fit(context.Background(), x, []int{0, 0, 1, 1}, 2)
	assert.NoError(t, err)

	bundle := &mlengine.ClassificationBundle{
		Model:          model,
		FeatureColumns: []string{"Hour"},
		ClassNames:     []string{"Low", "High"},
		Metrics:        mlengine.ClassificationMetrics{Accuracy: 100, F1Score: 1},
		TrainedAt:      time.Now().UTC(),
	}
	assert.NoError(t, store.PutClassification(bundle))

	loaded, err := store.GetClassification()
	assert.NoError(t, err)
	assert.Equal(t, bundle.ClassNames, loaded.ClassNames)
	assert.Equal(t, model.PredictClass([]float64{10}), loaded.Model.PredictClass([]float64{10}))
}
