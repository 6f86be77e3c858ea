package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/analytics"
	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/mlengine"
)

func insightsTable() *dataset.Table {
	t := dataset.New([]string{"Platform", "Content_Type", "Hour", "Day_of_Week", "Caption_Length", "Hashtags", "Engagement_Rate", "Reach"})
	t.Append(dataset.Row{"Platform": "Instagram", "Content_Type": "Reel", "Hour": 9.0, "Day_of_Week": 0.0, "Caption_Length": 40.0, "Hashtags": "#go #web", "Engagement_Rate": 10.0, "Reach": 1000.0})
	t.Append(dataset.Row{"Platform": "Instagram", "Content_Type": "Reel", "Hour": 9.0, "Day_of_Week": 0.0, "Caption_Length": 40.0, "Hashtags": "#go", "Engagement_Rate": 6.0, "Reach": 2000.0})
	t.Append(dataset.Row{"Platform": "TikTok", "Content_Type": "Post", "Hour": 18.0, "Day_of_Week": 4.0, "Caption_Length": 100.0, "Hashtags": "#viral", "Engagement_Rate": 4.0, "Reach": 3000.0})
	t.Append(dataset.Row{"Platform": "TikTok", "Content_Type": "Post", "Hour": 21.0, "Day_of_Week": 4.0, "Caption_Length": 200.0, "Hashtags": "#viral, #fun", "Engagement_Rate": 2.0, "Reach": 2000.0})
	return t
}

func TestBuildInsightsAggregates(t *testing.T) {
	in := analytics.BuildInsights(insightsTable(), mlengine.Filter{}, nil)

	assert.Equal(t, []analytics.BestTime{
		{Hour: 9, AvgEngagement: 8},
		{Hour: 18, AvgEngagement: 4},
		{Hour: 21, AvgEngagement: 2},
	}, in.BestTimes)

	assert.Equal(t, analytics.BestDay{Day: "Mon", AvgEngagement: 8}, in.BestDay)
	assert.Equal(t, "Short (<50 chars)", in.BestCaptionLength)

	// commas and whitespace both separate tags, ranked by mean engagement
	assert.Equal(t, []analytics.HashtagInsight{
		{Hashtag: "#web", AvgEngagement: 10, Count: 1},
		{Hashtag: "#go", AvgEngagement: 8, Count: 2},
		{Hashtag: "#viral", AvgEngagement: 3, Count: 2},
		{Hashtag: "#fun", AvgEngagement: 2, Count: 1},
	}, in.BestHashtags)

	assert.Equal(t, []analytics.DistributionBucket{
		{Range: "2-4%", Count: 1},
		{Range: "4-6%", Count: 1},
		{Range: "6-8%", Count: 1},
		{Range: "10-12%", Count: 1},
	}, in.EngagementDistribution)

	assert.Equal(t, []analytics.TopPost{
		{Platform: "Instagram", ContentType: "Reel", EngagementRate: 10, Reach: 1000},
		{Platform: "Instagram", ContentType: "Reel", EngagementRate: 6, Reach: 2000},
		{Platform: "TikTok", ContentType: "Post", EngagementRate: 4, Reach: 3000},
		{Platform: "TikTok", ContentType: "Post", EngagementRate: 2, Reach: 2000},
	}, in.TopPosts)

	assert.Equal(t, []analytics.PlatformEngagement{
		{Platform: "Instagram", Engagement: 8},
		{Platform: "TikTok", Engagement: 3},
	}, in.PlatformEngagement)

	assert.Equal(t, 2000.0, in.AverageReach)
	assert.Nil(t, in.PredictedEngagement)
	assert.Nil(t, in.PredictedClass)
}

func TestBuildInsightsPlatformFilter(t *testing.T) {
	in := analytics.BuildInsights(insightsTable(), mlengine.Filter{Platform: "TikTok"}, nil)

	assert.Equal(t, 2500.0, in.AverageReach)
	assert.Equal(t, []analytics.PlatformEngagement{{Platform: "TikTok", Engagement: 3}}, in.PlatformEngagement)
	assert.Equal(t, analytics.BestDay{Day: "Fri", AvgEngagement: 3}, in.BestDay)
}

func TestBuildInsightsIgnoresUnmatchedFilters(t *testing.T) {
	// a platform that never occurs is ignored
	in := analytics.BuildInsights(insightsTable(), mlengine.Filter{Platform: "LinkedIn"}, nil)
	assert.Equal(t, 2000.0, in.AverageReach)

	// both values occur, but never together; fall back to the full table
	in = analytics.BuildInsights(insightsTable(), mlengine.Filter{Platform: "Instagram", ContentType: "Post"}, nil)
	assert.Equal(t, 2000.0, in.AverageReach)
}

func TestBuildInsightsEmptyTableDefaults(t *testing.T) {
	table := dataset.New([]string{"Notes"})
	table.Append(dataset.Row{"Notes": "nothing useful"})

	in := analytics.BuildInsights(table, mlengine.Filter{}, nil)

	assert.NotNil(t, in.BestTimes)
	assert.Empty(t, in.BestTimes)
	assert.Equal(t, "N/A", in.BestDay.Day)
	assert.Equal(t, "Medium (50-150 chars)", in.BestCaptionLength)
	assert.Empty(t, in.BestHashtags)
	assert.Empty(t, in.EngagementDistribution)
	assert.Empty(t, in.TopPosts)
	assert.Empty(t, in.PlatformEngagement)
	assert.Equal(t, 0.0, in.AverageReach)
}

func TestBuildInsightsUnknownPostFields(t *testing.T) {
	table := dataset.New([]string{"Engagement_Rate"})
	table.Append(dataset.Row{"Engagement_Rate": 5.0})

	in := analytics.BuildInsights(table, mlengine.Filter{}, nil)

	assert.Equal(t, []analytics.TopPost{
		{Platform: "Unknown", ContentType: "Unknown", EngagementRate: 5, Reach: 0},
	}, in.TopPosts)
}

func TestBuildInsightsWithTrainedModels(t *testing.T) {
	table := insightsTable()
	store := mlengine.NewFileStore(t.TempDir())

	res, err := mlengine.Train(context.Background(), table, store, mlengine.ModelBoth)
	assert.NoError(t, err)
	assert.NoError(t, res.RegressionErr)
	assert.NoError(t, res.ClassificationErr)

	in := analytics.BuildInsights(table, mlengine.Filter{Platform: "Instagram"}, store)

	assert.NotNil(t, in.PredictedEngagement)
	if assert.NotNil(t, in.PredictedClass) {
		assert.Contains(t, []string{mlengine.LevelLow, mlengine.LevelAverage, mlengine.LevelHigh}, *in.PredictedClass)
	}
}
