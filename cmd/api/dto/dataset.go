package dto

import (
	"time"

	"github.com/Abaneee/social-pulse/models"
	"github.com/Abaneee/social-pulse/pipeline"
)

// DatasetDTO is the public view of an uploaded dataset.
type DatasetDTO struct {
	ID               string    `json:"id" example:"0b37c9a4-55c1-4f9d-9d75-3a8f6f0c2ad1"`
	OriginalFilename string    `json:"original_filename" example:"posts.csv"`
	RowCount         int       `json:"row_count" example:"320"`
	ColumnCount      int       `json:"column_count" example:"9"`
	Columns          []string  `json:"columns"`
	IsActive         bool      `json:"is_active" example:"true"`
	UploadedAt       time.Time `json:"uploaded_at" example:"2025-01-01T12:00:00Z"`
}

// PreprocessingLogDTO records what a cleaning run did.
type PreprocessingLogDTO struct {
	ID                   string    `json:"id"`
	CleaningStepsApplied []string  `json:"cleaning_steps_applied"`
	RowsRemoved          int       `json:"rows_removed" example:"12"`
	RowsAfter            int       `json:"rows_after" example:"308"`
	ProcessedAt          time.Time `json:"processed_at"`
}

// EDAHistoryDTO is one stored profiling report.
type EDAHistoryDTO struct {
	ID          string    `json:"id"`
	ReportJSON  any       `json:"report_json"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ProcessRequestDTO selects optional cleaning steps. Every toggle
// defaults to off.
type ProcessRequestDTO struct {
	RemoveNulls      bool `json:"removeNulls"`
	Deduplicate      bool `json:"deduplicate"`
	StandardizeDates bool `json:"standardizeDates"`
}

// UploadResponseDTO is returned after a successful CSV upload.
type UploadResponseDTO struct {
	Dataset    DatasetDTO          `json:"dataset"`
	Preview    []map[string]any    `json:"preview"`
	DataHealth pipeline.DataHealth `json:"dataHealth"`
}

// ActivateResponseDTO confirms which dataset is now active.
type ActivateResponseDTO struct {
	Message string     `json:"message" example:"Dataset activated."`
	Dataset DatasetDTO `json:"dataset"`
}

// ProcessResponseDTO is returned after a preprocessing run.
type ProcessResponseDTO struct {
	Message       string              `json:"message" example:"Data processed successfully."`
	Preprocessing PreprocessingLogDTO `json:"preprocessing"`
	Preview       []map[string]any    `json:"preview"`
	DataHealth    pipeline.DataHealth `json:"dataHealth"`
}

// EDAResponseDTO wraps a freshly generated profiling report.
type EDAResponseDTO struct {
	EDA EDAHistoryDTO `json:"eda"`
}

// EDAHistoryListResponseDTO lists a dataset's stored reports.
type EDAHistoryListResponseDTO struct {
	History []EDAHistoryDTO `json:"history"`
}

func NewDatasetDTO(d *models.Dataset) DatasetDTO {
	return DatasetDTO{
		ID:               d.ID,
		OriginalFilename: d.OriginalFilename,
		RowCount:         d.RowCount,
		ColumnCount:      d.ColumnCount,
		Columns:          d.Columns,
		IsActive:         d.IsActive,
		UploadedAt:       d.UploadedAt,
	}
}

func NewDatasetDTOs(datasets []models.Dataset) []DatasetDTO {
	out := make([]DatasetDTO, 0, len(datasets))
	for i := range datasets {
		out = append(out, NewDatasetDTO(&datasets[i]))
	}
	return out
}

func NewPreprocessingLogDTO(l *models.PreprocessingLog) PreprocessingLogDTO {
	return PreprocessingLogDTO{
		ID:                   l.ID,
		CleaningStepsApplied: l.CleaningStepsApplied,
		RowsRemoved:          l.RowsRemoved,
		RowsAfter:            l.RowsAfter,
		ProcessedAt:          l.ProcessedAt,
	}
}

func NewEDAHistoryDTO(h *models.EDAHistory) EDAHistoryDTO {
	return EDAHistoryDTO{
		ID:          h.ID,
		ReportJSON:  h.ReportJSON,
		GeneratedAt: h.GeneratedAt,
	}
}

func NewEDAHistoryDTOs(histories []models.EDAHistory) []EDAHistoryDTO {
	out := make([]EDAHistoryDTO, 0, len(histories))
	for i := range histories {
		out = append(out, NewEDAHistoryDTO(&histories[i]))
	}
	return out
}

func (r ProcessRequestDTO) Options() pipeline.Options {
	return pipeline.Options{
		RemoveNulls:      r.RemoveNulls,
		Deduplicate:      r.Deduplicate,
		StandardizeDates: r.StandardizeDates,
	}
}
