package mlengine

import (
	"time"

	"github.com/Abaneee/social-pulse/boost"
)

// RegressionMetrics are the held-out scores of a trained regressor.
type RegressionMetrics struct {
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2_score"`
}

// ClassificationMetrics are the held-out scores of a trained classifier.
// Accuracy is a percentage, F1Score a weighted average over classes.
type ClassificationMetrics struct {
	Accuracy float64 `json:"accuracy"`
	F1Score  float64 `json:"f1_score"`
}

// RegressionBundle is the persisted regression artifact. FeatureColumns
// pins the exact column order the model was fitted on so prediction can
// rebuild compatible vectors later.
type RegressionBundle struct {
	Model          *boost.Regressor  `json:"model"`
	FeatureColumns []string          `json:"feature_columns"`
	Metrics        RegressionMetrics `json:"metrics"`
	TrainedAt      time.Time         `json:"trained_at"`
}

// ClassificationBundle is the persisted classification artifact.
// ClassNames maps the model's class indices back to level labels.
type ClassificationBundle struct {
	Model          *boost.Classifier     `json:"model"`
	FeatureColumns []string              `json:"feature_columns"`
	ClassNames     []string              `json:"class_names"`
	Metrics        ClassificationMetrics `json:"metrics"`
	TrainedAt      time.Time             `json:"trained_at"`
}
