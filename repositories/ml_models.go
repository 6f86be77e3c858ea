package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abaneee/social-pulse/models"
)

type MLModelRepository struct {
	col *mongo.Collection
}

func NewMLModelRepository(db *mongo.Database) *MLModelRepository {
	return &MLModelRepository{col: db.Collection("ml_models")}
}

// UpsertByDatasetAndType stores model metadata uniquely identified by
// (dataset_id, model_type). Retraining replaces the previous record.
func (r *MLModelRepository) UpsertByDatasetAndType(ctx context.Context, m *models.MLModel) (*mongo.UpdateResult, error) {
	m.TrainedAt = time.Now().UTC()

	filter := bson.M{"dataset_id": m.DatasetID, "model_type": m.ModelType}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id": m.ID,
		},
		"$set": bson.M{
			"dataset_id":      m.DatasetID,
			"model_type":      m.ModelType,
			"artifact_path":   m.ArtifactPath,
			"metrics":         m.Metrics,
			"feature_columns": m.FeatureColumns,
			"trained_at":      m.TrainedAt,
		},
	}
	opts := options.Update().SetUpsert(true)
	return r.col.UpdateOne(ctx, filter, update, opts)
}

// ListByDataset returns all trained models of a dataset.
func (r *MLModelRepository) ListByDataset(ctx context.Context, datasetID string) ([]models.MLModel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "model_type", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"dataset_id": datasetID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.MLModel{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByDataset removes all model metadata of a deleted dataset.
func (r *MLModelRepository) DeleteByDataset(ctx context.Context, datasetID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"dataset_id": datasetID})
	return err
}
