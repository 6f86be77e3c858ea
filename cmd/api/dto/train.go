package dto

import (
	"time"

	"github.com/Abaneee/social-pulse/mlengine"
	"github.com/Abaneee/social-pulse/models"
)

// TrainRequestDTO selects which model kinds to train. An empty
// model_type means both.
type TrainRequestDTO struct {
	ModelType string `json:"model_type" example:"both"`
}

// TrainModelResultDTO is one model kind's training outcome. Failed
// kinds carry only Error.
type TrainModelResultDTO struct {
	Title           string   `json:"title,omitempty" example:"Gradient Boosting Regression"`
	Subtitle        string   `json:"subtitle,omitempty" example:"Predict Engagement Rate"`
	Metrics         any      `json:"metrics,omitempty"`
	FeatureColumns  []string `json:"feature_columns,omitempty"`
	ClassNames      []string `json:"class_names,omitempty"`
	TrainingSamples int      `json:"training_samples,omitempty" example:"256"`
	TestSamples     int      `json:"test_samples,omitempty" example:"64"`
	Visualization   any      `json:"visualization,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// TrainResponseDTO is returned by the train endpoint. Results are
// keyed by model kind.
type TrainResponseDTO struct {
	Message string                         `json:"message" example:"Training complete."`
	Results map[string]TrainModelResultDTO `json:"results"`
}

// MLModelDTO is the stored metadata of one trained model.
type MLModelDTO struct {
	ID             string    `json:"id"`
	ModelType      string    `json:"model_type" example:"regression"`
	Metrics        any       `json:"metrics"`
	FeatureColumns []string  `json:"feature_columns"`
	TrainedAt      time.Time `json:"trained_at"`
}

// ModelsResponseDTO lists the trained models of the active dataset.
type ModelsResponseDTO struct {
	Models []MLModelDTO `json:"models"`
}

func NewTrainResponseDTO(result *mlengine.TrainResult) TrainResponseDTO {
	results := map[string]TrainModelResultDTO{}

	if result.Regression != nil {
		r := result.Regression
		results[mlengine.ModelRegression] = TrainModelResultDTO{
			Title:           "Gradient Boosting Regression",
			Subtitle:        "Predict Engagement Rate",
			Metrics:         r.Metrics,
			FeatureColumns:  r.FeatureColumns,
			TrainingSamples: r.TrainingSamples,
			TestSamples:     r.TestSamples,
			Visualization:   r.Visualization,
		}
	} else if result.RegressionErr != nil {
		results[mlengine.ModelRegression] = TrainModelResultDTO{Error: result.RegressionErr.Error()}
	}

	if result.Classification != nil {
		c := result.Classification
		results[mlengine.ModelClassification] = TrainModelResultDTO{
			Title:           "Gradient Boosting Classification",
			Subtitle:        "Predict Engagement Category",
			Metrics:         c.Metrics,
			FeatureColumns:  c.FeatureColumns,
			ClassNames:      c.ClassNames,
			TrainingSamples: c.TrainingSamples,
			TestSamples:     c.TestSamples,
			Visualization:   c.Visualization,
		}
	} else if result.ClassificationErr != nil {
		results[mlengine.ModelClassification] = TrainModelResultDTO{Error: result.ClassificationErr.Error()}
	}

	return TrainResponseDTO{Message: "Training complete.", Results: results}
}

func NewMLModelDTOs(ms []models.MLModel) []MLModelDTO {
	out := make([]MLModelDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, MLModelDTO{
			ID:             m.ID,
			ModelType:      m.ModelType,
			Metrics:        m.Metrics,
			FeatureColumns: m.FeatureColumns,
			TrainedAt:      m.TrainedAt,
		})
	}
	return out
}
