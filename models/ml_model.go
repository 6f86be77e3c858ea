package models

import "time"

// Model type values stored on MLModel.
const (
	ModelTypeRegression     = "regression"
	ModelTypeClassification = "classification"
)

// MLModel is the metadata of one trained model. The serialized bundle
// itself lives on disk at ArtifactPath; Mongo only keeps what the API
// reports back. Unique per (dataset, model_type); retraining upserts.
// Collection: ml_models
type MLModel struct {
	ID             string    `bson:"_id" json:"id"`
	DatasetID      string    `bson:"dataset_id" json:"-"`
	ModelType      string    `bson:"model_type" json:"model_type"`
	ArtifactPath   string    `bson:"artifact_path" json:"-"`
	Metrics        any       `bson:"metrics" json:"metrics"`
	FeatureColumns []string  `bson:"feature_columns" json:"feature_columns"`
	TrainedAt      time.Time `bson:"trained_at" json:"trained_at"`
}
