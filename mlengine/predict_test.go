package mlengine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/mlengine"
)

func TestPredictReplaysTrainedBundles(t *testing.T) {
	table := trainingTable()
	store := mlengine.NewFileStore(t.TempDir())

	res, err := mlengine.Train(context.Background(), table, store, mlengine.ModelBoth)
	assert.NoError(t, err)
	assert.NoError(t, res.RegressionErr)
	assert.NoError(t, res.ClassificationErr)

	rate, err := mlengine.PredictEngagement(table, mlengine.Filter{Platform: "X"}, store)
	assert.NoError(t, err)
	assert.InDelta(t, 10.0, rate, 0.1)

	rate, err = mlengine.PredictEngagement(table, mlengine.Filter{Platform: "Instagram"}, store)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, rate, 0.1)

	level, err := mlengine.PredictLevel(table, mlengine.Filter{Platform: "X"}, store)
	assert.NoError(t, err)
	assert.Equal(t, mlengine.LevelHigh, level)

	level, err = mlengine.PredictLevel(table, mlengine.Filter{Platform: "Instagram"}, store)
	assert.NoError(t, err)
	assert.Equal(t, mlengine.LevelLow, level)
}

func TestPredictUnavailableWithoutBundles(t *testing.T) {
	store := mlengine.NewFileStore(t.TempDir())
	table := trainingTable()

	_, err := mlengine.PredictEngagement(table, mlengine.Filter{}, store)
	assert.ErrorIs(t, err, mlengine.ErrUnavailable)

	_, err = mlengine.PredictLevel(table, mlengine.Filter{}, store)
	assert.ErrorIs(t, err, mlengine.ErrUnavailable)
}
