package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abaneee/social-pulse/analytics"
	"github.com/Abaneee/social-pulse/dataset"
)

func TestListFilterOptions(t *testing.T) {
	table := dataset.New([]string{"Platform", "Content_Type"})
	table.Append(dataset.Row{"Platform": "TikTok", "Content_Type": "Reel"})
	table.Append(dataset.Row{"Platform": "Instagram", "Content_Type": "Post"})
	table.Append(dataset.Row{"Platform": "", "Content_Type": "Reel"})
	table.Append(dataset.Row{"Platform": nil, "Content_Type": nil})

	opts := analytics.ListFilterOptions(table)

	assert.Equal(t, []string{"Instagram", "TikTok"}, opts.Platforms)
	assert.Equal(t, []string{"Post", "Reel"}, opts.ContentTypes)
}

func TestListFilterOptionsMissingColumns(t *testing.T) {
	opts := analytics.ListFilterOptions(dataset.New([]string{"Notes"}))

	assert.NotNil(t, opts.Platforms)
	assert.Empty(t, opts.Platforms)
	assert.NotNil(t, opts.ContentTypes)
	assert.Empty(t, opts.ContentTypes)
}
