package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Abaneee/social-pulse/dataset"
	"github.com/Abaneee/social-pulse/internal/logger"
	"github.com/Abaneee/social-pulse/models"
	"github.com/Abaneee/social-pulse/pipeline"
	"github.com/Abaneee/social-pulse/repositories"
)

// MaxUploadBytes is the upload size limit (50 MB).
const MaxUploadBytes = 50 << 20

var (
	ErrNotCSV          = errors.New("only csv files are accepted")
	ErrFileTooLarge    = errors.New("file size exceeds the upload limit")
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrNoActiveDataset = errors.New("no active dataset")
)

// ParseError reports a CSV that could not be parsed. The handler
// layer surfaces Err's text to the client.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse csv: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// UploadResult is what an accepted upload reports back.
type UploadResult struct {
	Dataset *models.Dataset
	Preview []map[string]any
	Health  pipeline.DataHealth
}

// ProcessResult is what a cleaning run reports back.
type ProcessResult struct {
	Log     *models.PreprocessingLog
	Preview []map[string]any
	Health  pipeline.DataHealth
}

// DatasetService owns the dataset lifecycle: upload, listing,
// activation and preprocessing. Files live under mediaRoot; Mongo
// keeps the metadata.
type DatasetService struct {
	datasets  *repositories.DatasetRepository
	logs      *repositories.PreprocessingLogRepository
	histories *repositories.EDAHistoryRepository
	mlmodels  *repositories.MLModelRepository
	mediaRoot string
}

func NewDatasetService(db *mongo.Database, mediaRoot string) *DatasetService {
	return &DatasetService{
		datasets:  repositories.NewDatasetRepository(db),
		logs:      repositories.NewPreprocessingLogRepository(db),
		histories: repositories.NewEDAHistoryRepository(db),
		mlmodels:  repositories.NewMLModelRepository(db),
		mediaRoot: mediaRoot,
	}
}

// Upload validates and parses a CSV, stores it under mediaRoot and
// records the dataset as the user's active one.
func (s *DatasetService) Upload(ctx context.Context, userID, filename string, data []byte) (*UploadResult, error) {
	if !strings.HasSuffix(filename, ".csv") {
		return nil, ErrNotCSV
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	t, err := dataset.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	id := uuid.NewString()
	rel := filepath.Join("datasets", id+".csv")
	abs := s.absPath(rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return nil, err
	}

	ds := &models.Dataset{
		ID:               id,
		UserID:           userID,
		FilePath:         rel,
		OriginalFilename: filename,
		RowCount:         t.Len(),
		ColumnCount:      len(t.Columns()),
		Columns:          t.Columns(),
		IsActive:         true,
		UploadedAt:       time.Now().UTC(),
	}
	if err := s.datasets.DeactivateAll(ctx, userID); err != nil {
		os.Remove(abs)
		return nil, err
	}
	if err := s.datasets.Insert(ctx, ds); err != nil {
		os.Remove(abs)
		return nil, err
	}

	logger.Log.Infof("dataset uploaded id=%s user=%s rows=%d cols=%d", ds.ID, userID, ds.RowCount, ds.ColumnCount)

	return &UploadResult{
		Dataset: ds,
		Preview: pipeline.Preview(t, 5),
		Health:  pipeline.Health(t),
	}, nil
}

// List returns the user's datasets, newest first.
func (s *DatasetService) List(ctx context.Context, userID string) ([]models.Dataset, error) {
	return s.datasets.ListByUser(ctx, userID)
}

// Activate makes one dataset the user's active one.
func (s *DatasetService) Activate(ctx context.Context, userID, datasetID string) (*models.Dataset, error) {
	ds, err := s.datasets.GetByIDAndUser(ctx, datasetID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDatasetNotFound
		}
		return nil, err
	}
	if err := s.datasets.DeactivateAll(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.datasets.SetActive(ctx, ds.ID); err != nil {
		return nil, err
	}
	ds.IsActive = true
	return ds, nil
}

// Active returns the user's active dataset.
func (s *DatasetService) Active(ctx context.Context, userID string) (*models.Dataset, error) {
	ds, err := s.datasets.FindActive(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoActiveDataset
		}
		return nil, err
	}
	return ds, nil
}

// Delete removes a dataset the user owns together with its files,
// cleaning log, profiling reports and trained models. Deleting the
// active dataset leaves the user with none active.
func (s *DatasetService) Delete(ctx context.Context, userID, datasetID string) error {
	ds, err := s.datasets.GetByIDAndUser(ctx, datasetID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDatasetNotFound
		}
		return err
	}

	if err := s.datasets.Delete(ctx, ds.ID); err != nil {
		return err
	}
	if err := s.logs.DeleteByDataset(ctx, ds.ID); err != nil {
		return err
	}
	if err := s.histories.DeleteByDataset(ctx, ds.ID); err != nil {
		return err
	}
	if err := s.mlmodels.DeleteByDataset(ctx, ds.ID); err != nil {
		return err
	}

	// File removal is best effort.
	os.Remove(s.absPath(ds.FilePath))
	os.Remove(s.absPath(filepath.Join("processed", ds.ID+".csv")))
	os.RemoveAll(s.absPath(filepath.Join("models", ds.ID)))

	logger.Log.Infof("dataset deleted id=%s user=%s", ds.ID, userID)
	return nil
}

// Process runs the cleaning pipeline over the active dataset's raw
// file, writes the processed copy and upserts the preprocessing log.
func (s *DatasetService) Process(ctx context.Context, userID string, opts pipeline.Options) (*ProcessResult, error) {
	ds, err := s.Active(ctx, userID)
	if err != nil {
		return nil, err
	}

	t, err := dataset.ReadCSVFile(s.absPath(ds.FilePath))
	if err != nil {
		return nil, err
	}
	res := pipeline.Preprocess(t, opts)

	rel := filepath.Join("processed", ds.ID+".csv")
	if err := os.MkdirAll(filepath.Dir(s.absPath(rel)), 0o755); err != nil {
		return nil, err
	}
	if err := dataset.WriteCSVFile(s.absPath(rel), res.Table); err != nil {
		return nil, err
	}

	saved, err := s.logs.UpsertByDataset(ctx, &models.PreprocessingLog{
		ID:                   uuid.NewString(),
		DatasetID:            ds.ID,
		CleaningStepsApplied: res.Steps,
		RowsRemoved:          res.RowsRemoved,
		RowsAfter:            res.RowsAfter,
		ProcessedFile:        rel,
	})
	if err != nil {
		return nil, err
	}
	if err := s.datasets.UpdateStats(ctx, ds.ID, res.RowsAfter, len(res.Columns), res.Columns); err != nil {
		return nil, err
	}

	logger.Log.Infof("dataset processed id=%s steps=%d rows_removed=%d rows_after=%d",
		ds.ID, len(res.Steps), res.RowsRemoved, res.RowsAfter)

	return &ProcessResult{Log: saved, Preview: res.Preview, Health: res.Health}, nil
}

// DataFilePath points at the processed copy when one exists on disk,
// otherwise the raw upload. Analytics and training prefer cleaned data
// but still work on raw uploads.
func (s *DatasetService) DataFilePath(ctx context.Context, ds *models.Dataset) string {
	if log, err := s.logs.GetByDataset(ctx, ds.ID); err == nil && log.ProcessedFile != "" {
		abs := s.absPath(log.ProcessedFile)
		if _, err := os.Stat(abs); err == nil {
			return abs
		}
	}
	return s.absPath(ds.FilePath)
}

// LoadActiveTable reads the active dataset's best available file.
func (s *DatasetService) LoadActiveTable(ctx context.Context, userID string) (*models.Dataset, *dataset.Table, error) {
	ds, err := s.Active(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	t, err := dataset.ReadCSVFile(s.DataFilePath(ctx, ds))
	if err != nil {
		return nil, nil, err
	}
	return ds, t, nil
}

func (s *DatasetService) absPath(rel string) string {
	return filepath.Join(s.mediaRoot, rel)
}
