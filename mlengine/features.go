package mlengine

import (
	"errors"
	"sort"

	"github.com/Abaneee/social-pulse/dataset"
)

// ErrNoFeatures is returned when a table yields an empty feature matrix.
var ErrNoFeatures = errors.New("no usable features for training")

// One-hot column name prefixes. These are part of the persisted
// feature-column contract replayed at prediction time.
const (
	platformPrefix    = dataset.ColPlatform + "_"
	contentTypePrefix = dataset.ColContentType + "_"
)

// numericFeatures are emitted first, in this order, under their
// canonical names regardless of the source column spelling.
var numericFeatures = []struct {
	Name  string
	Field dataset.Field
}{
	{dataset.ColCaptionLength, dataset.FieldCaptionLength},
	{dataset.ColHashtagCount, dataset.FieldHashtagCount},
	{dataset.ColHour, dataset.FieldHour},
	{dataset.ColDayOfWeek, dataset.FieldDayOfWeek},
}

var categoricalFeatures = []struct {
	Prefix string
	Field  dataset.Field
}{
	{platformPrefix, dataset.FieldPlatform},
	{contentTypePrefix, dataset.FieldContentType},
}

// BuildFeatures converts a table into a numeric matrix and the ordered
// feature-column contract. Numeric features are coerced with missing
// values as 0; categorical features are one-hot encoded per distinct
// value, sorted ascending. Identical input yields identical columns.
func BuildFeatures(t *dataset.Table) ([][]float64, []string, error) {
	type column struct {
		name string
		val  func(r dataset.Row) float64
	}
	var cols []column

	for _, nf := range numericFeatures {
		src, ok := t.Resolve(nf.Field)
		if !ok {
			continue
		}
		src := src
		cols = append(cols, column{nf.Name, func(r dataset.Row) float64 {
			f, ok := dataset.Float(r[src])
			if !ok {
				return 0
			}
			return f
		}})
	}

	for _, cf := range categoricalFeatures {
		src, ok := t.Resolve(cf.Field)
		if !ok {
			continue
		}
		src := src
		for _, value := range distinctLabels(t, src) {
			value := value
			cols = append(cols, column{cf.Prefix + value, func(r dataset.Row) float64 {
				if label, ok := cellLabel(r[src]); ok && label == value {
					return 1
				}
				return 0
			}})
		}
	}

	if t.Len() == 0 || len(cols) == 0 {
		return nil, nil, ErrNoFeatures
	}

	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	matrix := make([][]float64, t.Len())
	for i, r := range t.Rows() {
		vec := make([]float64, len(cols))
		for j, c := range cols {
			vec[j] = c.val(r)
		}
		matrix[i] = vec
	}
	return matrix, names, nil
}

func distinctLabels(t *dataset.Table, col string) []string {
	seen := make(map[string]bool)
	for _, r := range t.Rows() {
		if label, ok := cellLabel(r[col]); ok {
			seen[label] = true
		}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func cellLabel(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s := dataset.Text(v)
	if s == "" {
		return "", false
	}
	return s, true
}
