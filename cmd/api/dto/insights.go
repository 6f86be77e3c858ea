package dto

import "github.com/Abaneee/social-pulse/analytics"

// InsightsRequestDTO narrows insights to one platform or content
// type. Empty strings mean no filter.
type InsightsRequestDTO struct {
	Platform    string `json:"platform" example:"Instagram"`
	ContentType string `json:"content_type" example:"Reel"`
}

// InsightsFiltersDTO echoes the filters a report was computed with.
type InsightsFiltersDTO struct {
	Platform    string `json:"platform" example:"Instagram"`
	ContentType string `json:"content_type" example:"Reel"`
}

// InsightsResponseDTO wraps the insight payload together with the
// applied filters.
type InsightsResponseDTO struct {
	Insights *analytics.Insights `json:"insights"`
	Filters  InsightsFiltersDTO  `json:"filters"`
}
