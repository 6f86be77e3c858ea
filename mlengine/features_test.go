package mlengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/mlengine"
)

func TestBuildFeaturesColumnContract(t *testing.T) {
	table := dataset.New([]string{"Caption_Length", "Hashtag_count", "Hour", "Day_of_Week", "Platform", "Content_Type"})
	table.Append(dataset.Row{"Caption_Length": 120.0, "Hashtag_count": 5.0, "Hour": 14.0, "Day_of_Week": 1.0, "Platform": "TikTok", "Content_Type": "Reel"})
	table.Append(dataset.Row{"Caption_Length": 80.0, "Hashtag_count": "3", "Hour": nil, "Day_of_Week": 2.0, "Platform": "Instagram", "Content_Type": "Post"})

	x, cols, err := mlengine.BuildFeatures(table)
	assert.NoError(t, err)

	// numeric features first in canonical order, then one-hots sorted by value
	assert.Equal(t, []string{
		"Caption_Length", "Hashtag_count", "Hour", "Day_of_Week",
		"Platform_Instagram", "Platform_TikTok",
		"Content_Type_Post", "Content_Type_Reel",
	}, cols)
	assert.Equal(t, [][]float64{
		{120, 5, 14, 1, 0, 1, 0, 1},
		{80, 3, 0, 2, 1, 0, 1, 0},
	}, x)
}

func TestBuildFeaturesSkipsMissingLabels(t *testing.T) {
	table := dataset.New([]string{"Platform"})
	table.Append(dataset.Row{"Platform": "Instagram"})
	table.Append(dataset.Row{"Platform": nil})

	x, cols, err := mlengine.BuildFeatures(table)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Platform_Instagram"}, cols)
	assert.Equal(t, [][]float64{{1}, {0}}, x)
}

func TestBuildFeaturesNoUsableColumns(t *testing.T) {
	table := dataset.New([]string{"Notes"})
	table.Append(dataset.Row{"Notes": "hello"})

	_, _, err := mlengine.BuildFeatures(table)
	assert.ErrorIs(t, err, mlengine.ErrNoFeatures)

	_, _, err = mlengine.BuildFeatures(dataset.New([]string{"Caption_Length"}))
	assert.ErrorIs(t, err, mlengine.ErrNoFeatures)
}
