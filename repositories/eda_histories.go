package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abaneee/social-pulse/models"
)

type EDAHistoryRepository struct {
	col *mongo.Collection
}

func NewEDAHistoryRepository(db *mongo.Database) *EDAHistoryRepository {
	return &EDAHistoryRepository{col: db.Collection("eda_histories")}
}

// Insert stores a new report; histories accumulate per dataset.
func (r *EDAHistoryRepository) Insert(ctx context.Context, h *models.EDAHistory) error {
	if h.GeneratedAt.IsZero() {
		h.GeneratedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, h)
	return err
}

// ListByDataset returns reports for a dataset, newest first.
func (r *EDAHistoryRepository) ListByDataset(ctx context.Context, datasetID string) ([]models.EDAHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "generated_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"dataset_id": datasetID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	histories := []models.EDAHistory{}
	if err := cur.All(ctx, &histories); err != nil {
		return nil, err
	}
	return histories, nil
}

// DeleteByDataset removes all reports of a deleted dataset.
func (r *EDAHistoryRepository) DeleteByDataset(ctx context.Context, datasetID string) error {
	_, err := r.col.DeleteMany(ctx, bson.M{"dataset_id": datasetID})
	return err
}
