package analytics

import "github.com/Abaneee/social-pulse/dataset"

// FilterOptions lists the distinct platform and content type values a
// client can filter by.
type FilterOptions struct {
	Platforms    []string `json:"platforms"`
	ContentTypes []string `json:"content_types"`
}

// ListFilterOptions collects the sorted distinct values of the
// platform and content type columns, skipping blanks.
func ListFilterOptions(t *dataset.Table) FilterOptions {
	opts := FilterOptions{
		Platforms:    []string{},
		ContentTypes: []string{},
	}
	if col, ok := t.Resolve(dataset.FieldPlatform); ok {
		opts.Platforms = distinctSorted(t, col)
	}
	if col, ok := t.Resolve(dataset.FieldContentType); ok {
		opts.ContentTypes = distinctSorted(t, col)
	}
	return opts
}
