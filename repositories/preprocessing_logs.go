package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abaneee/social-pulse/models"
)

type PreprocessingLogRepository struct {
	col *mongo.Collection
}

func NewPreprocessingLogRepository(db *mongo.Database) *PreprocessingLogRepository {
	return &PreprocessingLogRepository{col: db.Collection("preprocessing_logs")}
}

// UpsertByDataset stores the latest cleaning run for a dataset,
// keeping exactly one log per dataset.
func (r *PreprocessingLogRepository) UpsertByDataset(ctx context.Context, l *models.PreprocessingLog) (*models.PreprocessingLog, error) {
	l.ProcessedAt = time.Now().UTC()

	filter := bson.M{"dataset_id": l.DatasetID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id": l.ID,
		},
		"$set": bson.M{
			"dataset_id":             l.DatasetID,
			"cleaning_steps_applied": l.CleaningStepsApplied,
			"rows_removed":           l.RowsRemoved,
			"rows_after":             l.RowsAfter,
			"processed_file":         l.ProcessedFile,
			"processed_at":           l.ProcessedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.col.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, err
	}
	return r.GetByDataset(ctx, l.DatasetID)
}

// GetByDataset returns the log for a dataset.
func (r *PreprocessingLogRepository) GetByDataset(ctx context.Context, datasetID string) (*models.PreprocessingLog, error) {
	var l models.PreprocessingLog
	if err := r.col.FindOne(ctx, bson.M{"dataset_id": datasetID}).Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteByDataset removes the log of a deleted dataset.
func (r *PreprocessingLogRepository) DeleteByDataset(ctx context.Context, datasetID string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"dataset_id": datasetID})
	return err
}
