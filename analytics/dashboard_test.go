package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/analytics"
	"github.com/Abaneee/social-pulse/dataset"
)

func dashboardTable() *dataset.Table {
	t := dataset.New([]string{"Platform", "Content_Type", "Date", "Hour", "Hashtags", "Engagement_Rate", "Reach"})
	t.Append(dataset.Row{"Platform": "Instagram", "Content_Type": "Reel", "Date": "2024-03-05", "Hour": 9.0, "Hashtags": "#go #web", "Engagement_Rate": 10.0, "Reach": 1000.0})
	t.Append(dataset.Row{"Platform": "Instagram", "Content_Type": "Post", "Date": "2024-03-05", "Hour": 9.0, "Hashtags": "#go", "Engagement_Rate": 6.0, "Reach": 2000.0})
	t.Append(dataset.Row{"Platform": "TikTok", "Content_Type": "Post", "Date": "2024-04-06", "Hour": 18.0, "Hashtags": "#viral", "Engagement_Rate": 4.0, "Reach": 3000.0})
	return t
}

func TestBuildDashboard(t *testing.T) {
	d := analytics.BuildDashboard(dashboardTable(), "")

	assert.Equal(t, []string{"Instagram", "TikTok"}, d.Platforms)

	assert.Len(t, d.PieData, 3)
	assert.Equal(t, []analytics.PieSlice{{Name: "Post", Value: 5}, {Name: "Reel", Value: 10}}, d.PieData["All"])
	assert.Equal(t, []analytics.PieSlice{{Name: "Post", Value: 6}, {Name: "Reel", Value: 10}}, d.PieData["Instagram"])
	assert.Equal(t, []analytics.PieSlice{{Name: "Post", Value: 4}}, d.PieData["TikTok"])

	// weekday order, days without posts omitted
	assert.Equal(t, []analytics.DayEngagement{
		{Day: "Tuesday", Engagement: 8},
		{Day: "Saturday", Engagement: 4},
	}, d.BarDayData)

	assert.Equal(t, []analytics.MonthEngagement{
		{Month: "Mar", Engagement: 8},
		{Month: "Apr", Engagement: 4},
	}, d.LineMonthData)

	// reach ties break alphabetically
	assert.Equal(t, []analytics.HashtagReach{
		{Hashtag: "#go", Reach: 3000},
		{Hashtag: "#viral", Reach: 3000},
		{Hashtag: "#web", Reach: 1000},
	}, d.BarHashtagData)

	assert.Equal(t, []analytics.ScatterPost{
		{X: 1000, Y: 10, Name: "Reel"},
		{X: 2000, Y: 6, Name: "Post"},
		{X: 3000, Y: 4, Name: "Post"},
	}, d.ScatterData)

	assert.Equal(t, []analytics.NamedEngagement{
		{Name: "Instagram - Reel", Engagement: 10},
		{Name: "Instagram - Post", Engagement: 6},
		{Name: "TikTok - Post", Engagement: 4},
	}, d.TopPostsData)

	assert.Equal(t, []analytics.DateReach{
		{Date: "2024-03-05", Reach: 3000},
		{Date: "2024-04-06", Reach: 3000},
	}, d.AreaReachData)

	assert.Equal(t, []analytics.HourEngagement{
		{Hour: "9:00", Engagement: 8},
		{Hour: "18:00", Engagement: 4},
	}, d.BarHourData)

	assert.Equal(t, analytics.KPIs{
		TotalReach:    6000,
		AvgEngagement: 6.67,
		TopHashtag:    "#go",
		PeakTime:      "9:00",
	}, d.KPIs)
}

func TestBuildDashboardPlatformFilter(t *testing.T) {
	d := analytics.BuildDashboard(dashboardTable(), "TikTok")

	// the selector keeps listing every platform
	assert.Equal(t, []string{"Instagram", "TikTok"}, d.Platforms)
	assert.Equal(t, 3000, d.KPIs.TotalReach)
	assert.Equal(t, 4.0, d.KPIs.AvgEngagement)

	assert.Len(t, d.PieData, 2)
	assert.Equal(t, []analytics.PieSlice{{Name: "Post", Value: 4}}, d.PieData["All"])
	assert.Equal(t, []analytics.DayEngagement{{Day: "Saturday", Engagement: 4}}, d.BarDayData)
}

func TestBuildDashboardSelectAllValues(t *testing.T) {
	for _, platform := range []string{"", "All", "None"} {
		d := analytics.BuildDashboard(dashboardTable(), platform)
		assert.Equal(t, 6000, d.KPIs.TotalReach, "platform=%q", platform)
	}
}

func TestBuildDashboardEmptyTable(t *testing.T) {
	d := analytics.BuildDashboard(dataset.New(nil), "")

	assert.Empty(t, d.Platforms)
	assert.Empty(t, d.PieData)
	assert.Empty(t, d.BarDayData)
	assert.Equal(t, "N/A", d.KPIs.TopHashtag)
	assert.Equal(t, "N/A", d.KPIs.PeakTime)
	assert.Equal(t, 0, d.KPIs.TotalReach)
}
