package services

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Abaneee/social-pulse/analytics"
	"github.com/Abaneee/social-pulse/internal/logger"
	"github.com/Abaneee/social-pulse/mlengine"
	"github.com/Abaneee/social-pulse/models"
	"github.com/Abaneee/social-pulse/pipeline"
	"github.com/Abaneee/social-pulse/repositories"
)

// AnalysisService runs profiling, training and aggregation over the
// caller's active dataset.
type AnalysisService struct {
	data      *DatasetService
	histories *repositories.EDAHistoryRepository
	mlmodels  *repositories.MLModelRepository
	mediaRoot string
}

func NewAnalysisService(db *mongo.Database, data *DatasetService, mediaRoot string) *AnalysisService {
	return &AnalysisService{
		data:      data,
		histories: repositories.NewEDAHistoryRepository(db),
		mlmodels:  repositories.NewMLModelRepository(db),
		mediaRoot: mediaRoot,
	}
}

// EDA profiles the active dataset and appends the report to its history.
func (s *AnalysisService) EDA(ctx context.Context, userID string) (*models.EDAHistory, error) {
	ds, t, err := s.data.LoadActiveTable(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := pipeline.GenerateProfile(t)
	h := &models.EDAHistory{
		ID:          uuid.NewString(),
		DatasetID:   ds.ID,
		ReportJSON:  profile,
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.histories.Insert(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// EDAHistories lists the active dataset's stored profiling reports,
// newest first.
func (s *AnalysisService) EDAHistories(ctx context.Context, userID string) ([]models.EDAHistory, error) {
	ds, err := s.data.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.histories.ListByDataset(ctx, ds.ID)
}

// Train fits the requested model kinds on the active dataset and
// records metadata for each successfully trained model. Per-kind
// failures are carried inside the result, not returned as an error.
func (s *AnalysisService) Train(ctx context.Context, userID, modelType string) (*mlengine.TrainResult, error) {
	ds, t, err := s.data.LoadActiveTable(ctx, userID)
	if err != nil {
		return nil, err
	}

	res, err := mlengine.Train(ctx, t, s.modelStore(ds), modelType)
	if err != nil {
		return nil, err
	}

	if res.Regression != nil {
		if _, err := s.mlmodels.UpsertByDatasetAndType(ctx, &models.MLModel{
			ID:             uuid.NewString(),
			DatasetID:      ds.ID,
			ModelType:      models.ModelTypeRegression,
			ArtifactPath:   filepath.Join("models", ds.ID, "regression.json"),
			Metrics:        res.Regression.Metrics,
			FeatureColumns: res.Regression.FeatureColumns,
		}); err != nil {
			return nil, err
		}
	}
	if res.Classification != nil {
		if _, err := s.mlmodels.UpsertByDatasetAndType(ctx, &models.MLModel{
			ID:             uuid.NewString(),
			DatasetID:      ds.ID,
			ModelType:      models.ModelTypeClassification,
			ArtifactPath:   filepath.Join("models", ds.ID, "classification.json"),
			Metrics:        res.Classification.Metrics,
			FeatureColumns: res.Classification.FeatureColumns,
		}); err != nil {
			return nil, err
		}
	}

	logger.Log.Infof("training finished dataset=%s type=%s regression_ok=%t classification_ok=%t",
		ds.ID, modelType, res.Regression != nil, res.Classification != nil)

	return res, nil
}

// Models lists the trained model metadata of the active dataset.
func (s *AnalysisService) Models(ctx context.Context, userID string) ([]models.MLModel, error) {
	ds, err := s.data.Active(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.mlmodels.ListByDataset(ctx, ds.ID)
}

// Insights aggregates recommendations for the given filters, replaying
// the dataset's trained models for the prediction fields.
func (s *AnalysisService) Insights(ctx context.Context, userID string, f mlengine.Filter) (*analytics.Insights, error) {
	ds, t, err := s.data.LoadActiveTable(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.BuildInsights(t, f, s.modelStore(ds)), nil
}

// Dashboard aggregates the chart payload, optionally narrowed to one
// platform.
func (s *AnalysisService) Dashboard(ctx context.Context, userID, platform string) (*analytics.Dashboard, error) {
	_, t, err := s.data.LoadActiveTable(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.BuildDashboard(t, platform), nil
}

// FilterOptions lists the filterable platform/content type values of
// the active dataset.
func (s *AnalysisService) FilterOptions(ctx context.Context, userID string) (*analytics.FilterOptions, error) {
	_, t, err := s.data.LoadActiveTable(ctx, userID)
	if err != nil {
		return nil, err
	}
	opts := analytics.ListFilterOptions(t)
	return &opts, nil
}

func (s *AnalysisService) modelStore(ds *models.Dataset) mlengine.Store {
	return mlengine.NewFileStore(filepath.Join(s.mediaRoot, "models", ds.ID))
}
