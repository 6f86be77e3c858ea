package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/pipeline"
)

func TestGenerateProfileTableSummary(t *testing.T) {
	table := newTable(
		[]string{"Platform", "Likes"},
		dataset.Row{"Platform": "Instagram", "Likes": 10.0},
		dataset.Row{"Platform": "Instagram", "Likes": 10.0},
		dataset.Row{"Platform": "TikTok", "Likes": nil},
	)

	p := pipeline.GenerateProfile(table)

	assert.Equal(t, 3, p.Table.N)
	assert.Equal(t, 2, p.Table.NVar)
	assert.Equal(t, 1, p.Table.NCellsMissing)
	assert.Equal(t, 1, p.Table.NDuplicates)
	assert.Equal(t, 16.67, p.Table.PCellsMissing)
}

func TestGenerateProfileNumericVariable(t *testing.T) {
	table := newTable(
		[]string{"Likes"},
		dataset.Row{"Likes": 1.0},
		dataset.Row{"Likes": 2.0},
		dataset.Row{"Likes": 3.0},
		dataset.Row{"Likes": nil},
	)

	p := pipeline.GenerateProfile(table)
	v := p.Variables["Likes"]

	assert.Equal(t, pipeline.TypeNumeric, v.Type)
	assert.Equal(t, 1, v.NMissing)
	assert.Equal(t, 25.0, v.PMissing)
	assert.Equal(t, 3, v.NDistinct)
	assert.Equal(t, 3, v.Count)
	if assert.NotNil(t, v.Mean) {
		assert.Equal(t, 2.0, *v.Mean)
	}
	if assert.NotNil(t, v.Std) {
		assert.Equal(t, 1.0, *v.Std)
	}
	if assert.NotNil(t, v.Min) {
		assert.Equal(t, 1.0, *v.Min)
	}
	if assert.NotNil(t, v.Max) {
		assert.Equal(t, 3.0, *v.Max)
	}
	if assert.NotNil(t, v.Median) {
		assert.Equal(t, 2.0, *v.Median)
	}
	assert.Nil(t, v.TopValues)
}

func TestGenerateProfileCategoricalVariable(t *testing.T) {
	table := newTable(
		[]string{"Content_Type"},
		dataset.Row{"Content_Type": "Reel"},
		dataset.Row{"Content_Type": "Reel"},
		dataset.Row{"Content_Type": "Reel"},
		dataset.Row{"Content_Type": "Story"},
		dataset.Row{"Content_Type": "Story"},
		dataset.Row{"Content_Type": "Post"},
		dataset.Row{"Content_Type": "Image"},
		dataset.Row{"Content_Type": "Video"},
		dataset.Row{"Content_Type": "Carousel"},
	)

	p := pipeline.GenerateProfile(table)
	v := p.Variables["Content_Type"]

	assert.Equal(t, pipeline.TypeCategorical, v.Type)
	assert.Equal(t, 6, v.NDistinct)
	assert.Nil(t, v.Mean)

	// only the five most frequent values survive; ties break alphabetically
	assert.Len(t, v.TopValues, 5)
	assert.Equal(t, 3, v.TopValues["Reel"])
	assert.Equal(t, 2, v.TopValues["Story"])
	assert.Contains(t, v.TopValues, "Carousel")
	assert.NotContains(t, v.TopValues, "Video")
}

func TestGenerateProfileDatetimeVariable(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	table := newTable(
		[]string{"Date"},
		dataset.Row{"Date": day},
		dataset.Row{"Date": day},
		dataset.Row{"Date": day.AddDate(0, 0, 4)},
	)

	p := pipeline.GenerateProfile(table)
	v := p.Variables["Date"]

	assert.Equal(t, pipeline.TypeDatetime, v.Type)
	assert.Equal(t, 2, v.NDistinct)
	assert.Equal(t, 2, v.TopValues["2024-03-05"])
	assert.Equal(t, 1, v.TopValues["2024-03-09"])
}
