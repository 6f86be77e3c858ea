package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Abaneee/social-pulse/models"
)

type DatasetRepository struct {
	col *mongo.Collection
}

func NewDatasetRepository(db *mongo.Database) *DatasetRepository {
	return &DatasetRepository{col: db.Collection("datasets")}
}

// Insert creates a new dataset document.
func (r *DatasetRepository) Insert(ctx context.Context, d *models.Dataset) error {
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, d)
	return err
}

// ListByUser returns the user's datasets, newest upload first.
func (r *DatasetRepository) ListByUser(ctx context.Context, userID string) ([]models.Dataset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	datasets := []models.Dataset{}
	if err := cur.All(ctx, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// GetByIDAndUser returns a dataset only when owned by the user.
func (r *DatasetRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*models.Dataset, error) {
	var d models.Dataset
	if err := r.col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// FindActive returns the user's active dataset.
func (r *DatasetRepository) FindActive(ctx context.Context, userID string) (*models.Dataset, error) {
	var d models.Dataset
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID, "is_active": true}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeactivateAll clears the active flag on every dataset of the user.
// Called before inserting or activating so at most one stays active.
func (r *DatasetRepository) DeactivateAll(ctx context.Context, userID string) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"user_id": userID, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	return err
}

// SetActive marks one dataset active.
func (r *DatasetRepository) SetActive(ctx context.Context, id string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"is_active": true}})
	return err
}

// UpdateStats refreshes the row/column bookkeeping after parsing or
// processing.
func (r *DatasetRepository) UpdateStats(ctx context.Context, id string, rowCount, columnCount int, columns []string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"row_count":    rowCount,
		"column_count": columnCount,
		"columns":      columns,
	}})
	return err
}

// Delete removes a dataset document, used when an upload fails to parse.
func (r *DatasetRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
