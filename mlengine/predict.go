package mlengine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Abaneee/social-pulse/dataset"
)

// ErrUnavailable means no usable bundle exists for the requested kind.
var ErrUnavailable = errors.New("prediction unavailable")

// Filter narrows predictions and insight aggregation to one platform
// and/or content type. Empty fields match everything.
type Filter struct {
	Platform    string `json:"platform"`
	ContentType string `json:"content_type"`
}

// PredictEngagement replays the stored regression bundle against a
// feature vector built from the filter and the table's medians.
func PredictEngagement(t *dataset.Table, f Filter, store Store) (float64, error) {
	b, err := store.GetRegression()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if b.Model == nil || len(b.FeatureColumns) == 0 {
		return 0, ErrUnavailable
	}
	v := b.Model.Predict(featureVector(b.FeatureColumns, t, f))
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrUnavailable
	}
	return v, nil
}

// PredictLevel replays the stored classification bundle and maps the
// winning class index back to its level name.
func PredictLevel(t *dataset.Table, f Filter, store Store) (string, error) {
	b, err := store.GetClassification()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if b.Model == nil || len(b.FeatureColumns) == 0 {
		return "", ErrUnavailable
	}
	idx := b.Model.PredictClass(featureVector(b.FeatureColumns, t, f))
	if idx < 0 || idx >= len(b.ClassNames) {
		return "", ErrUnavailable
	}
	return b.ClassNames[idx], nil
}

// featureVector rebuilds a vector matching the bundle's column
// contract. One-hot columns fire only on an exact filter match;
// numeric columns take the median of the (filtered) table, or 0 when
// the column is absent.
func featureVector(cols []string, t *dataset.Table, f Filter) []float64 {
	vec := make([]float64, len(cols))
	for i, col := range cols {
		switch {
		case strings.HasPrefix(col, platformPrefix):
			if f.Platform != "" && col == platformPrefix+f.Platform {
				vec[i] = 1
			}
		case strings.HasPrefix(col, contentTypePrefix):
			if f.ContentType != "" && col == contentTypePrefix+f.ContentType {
				vec[i] = 1
			}
		default:
			vec[i] = columnMedian(t, col)
		}
	}
	return vec
}

func columnMedian(t *dataset.Table, col string) float64 {
	src := col
	if !t.HasColumn(src) {
		field, ok := featureField(col)
		if !ok {
			return 0
		}
		if src, ok = t.Resolve(field); !ok {
			return 0
		}
	}
	med, ok := dataset.Median(t.Column(src))
	if !ok {
		return 0
	}
	return med
}

func featureField(name string) (dataset.Field, bool) {
	for _, nf := range numericFeatures {
		if nf.Name == name {
			return nf.Field, true
		}
	}
	return "", false
}
