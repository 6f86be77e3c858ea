package mlengine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/Abaneee/social-pulse/boost"
	"github.com/Abaneee/social-pulse/dataset"
)

var (
	// ErrTargetMissing means the table has no engagement rate column.
	ErrTargetMissing = errors.New("engagement rate column not found")
	// ErrUnknownModelType rejects a model type outside the accepted set.
	ErrUnknownModelType = errors.New("unknown model type")
)

// Model types accepted by Train.
const (
	ModelRegression     = "regression"
	ModelClassification = "classification"
	ModelBoth           = "both"
)

// Engagement level labels and their rate boundaries in percent.
const (
	LevelLow     = "Low"
	LevelAverage = "Average"
	LevelHigh    = "High"

	lowRateLimit  = 2.0
	highRateLimit = 8.0
)

const (
	splitSeed        = 42
	testFraction     = 0.2
	maxScatterPoints = 200
)

// EngagementLevel buckets an engagement rate into Low, Average or High.
func EngagementLevel(rate float64) string {
	switch {
	case rate < lowRateLimit:
		return LevelLow
	case rate <= highRateLimit:
		return LevelAverage
	default:
		return LevelHigh
	}
}

// ScatterPoint pairs a held-out actual value with the model's prediction.
type ScatterPoint struct {
	Actual    float64 `json:"actual"`
	Predicted float64 `json:"predicted"`
}

// RegressionViz carries chart-ready data for the regression report.
type RegressionViz struct {
	ScatterData []ScatterPoint `json:"scatter_data"`
}

// RegressionReport summarizes one regression training run.
type RegressionReport struct {
	Metrics         RegressionMetrics `json:"metrics"`
	FeatureColumns  []string          `json:"feature_columns"`
	TrainingSamples int               `json:"training_samples"`
	TestSamples     int               `json:"test_samples"`
	Visualization   RegressionViz     `json:"visualization"`
}

// ConfusionRow holds one actual class with predicted counts per class.
type ConfusionRow struct {
	Name   string         `json:"name"`
	Counts map[string]int `json:"counts"`
}

// ClassificationViz carries chart-ready data for the classification report.
type ClassificationViz struct {
	ConfusionMatrix []ConfusionRow `json:"confusion_matrix"`
}

// ClassificationReport summarizes one classification training run.
type ClassificationReport struct {
	Metrics         ClassificationMetrics `json:"metrics"`
	FeatureColumns  []string              `json:"feature_columns"`
	ClassNames      []string              `json:"class_names"`
	TrainingSamples int                   `json:"training_samples"`
	TestSamples     int                   `json:"test_samples"`
	Visualization   ClassificationViz     `json:"visualization"`
}

// TrainResult carries the per-model outcomes of a Train call. A failing
// model records its error here instead of failing the whole run.
type TrainResult struct {
	Regression        *RegressionReport
	RegressionErr     error
	Classification    *ClassificationReport
	ClassificationErr error
}

// Train fits the requested model kinds on the table and persists each
// successful bundle to the store. Model failures are isolated per kind;
// only an invalid model type or a cancelled context fails the call.
func Train(ctx context.Context, t *dataset.Table, store Store, modelType string) (*TrainResult, error) {
	if modelType == "" {
		modelType = ModelBoth
	}
	switch modelType {
	case ModelRegression, ModelClassification, ModelBoth:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModelType, modelType)
	}

	res := &TrainResult{}
	if modelType == ModelRegression || modelType == ModelBoth {
		res.Regression, res.RegressionErr = TrainRegression(ctx, t, store)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if modelType == ModelClassification || modelType == ModelBoth {
		res.Classification, res.ClassificationErr = TrainClassification(ctx, t, store)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// TrainRegression fits a boosted regressor on the engagement rate,
// scores it on a held-out split and persists the bundle.
func TrainRegression(ctx context.Context, t *dataset.Table, store Store) (*RegressionReport, error) {
	target, ok := t.Resolve(dataset.FieldEngagementRate)
	if !ok {
		return nil, ErrTargetMissing
	}
	x, featureCols, err := BuildFeatures(t)
	if err != nil {
		return nil, err
	}
	y := targetVector(t, target)

	rng := rand.New(rand.NewSource(splitSeed))
	trainIdx, testIdx := splitIndices(len(y), testFraction, rng)

	model := boost.NewRegressor(boost.DefaultConfig())
	if err := model.Fit(ctx, gatherRows(x, trainIdx), gatherFloats(y, trainIdx)); err != nil {
		return nil, err
	}

	actual := gatherFloats(y, testIdx)
	predicted := make([]float64, len(testIdx))
	for i, idx := range testIdx {
		predicted[i] = model.Predict(x[idx])
	}

	metrics := RegressionMetrics{
		MSE:  dataset.Round(meanSquaredError(actual, predicted), 4),
		RMSE: dataset.Round(math.Sqrt(meanSquaredError(actual, predicted)), 4),
		R2:   dataset.Round(r2Score(actual, predicted), 4),
	}

	bundle := &RegressionBundle{
		Model:          model,
		FeatureColumns: featureCols,
		Metrics:        metrics,
		TrainedAt:      time.Now().UTC(),
	}
	if err := store.PutRegression(bundle); err != nil {
		return nil, err
	}

	return &RegressionReport{
		Metrics:         metrics,
		FeatureColumns:  featureCols,
		TrainingSamples: len(trainIdx),
		TestSamples:     len(testIdx),
		Visualization:   RegressionViz{ScatterData: scatterSample(actual, predicted, rng)},
	}, nil
}

// TrainClassification buckets the engagement rate into levels, fits a
// boosted classifier, scores it on a stratified held-out split and
// persists the bundle.
func TrainClassification(ctx context.Context, t *dataset.Table, store Store) (*ClassificationReport, error) {
	target, ok := t.Resolve(dataset.FieldEngagementRate)
	if !ok {
		return nil, ErrTargetMissing
	}
	x, featureCols, err := BuildFeatures(t)
	if err != nil {
		return nil, err
	}

	rates := targetVector(t, target)
	classNames, y := encodeLevels(rates)

	rng := rand.New(rand.NewSource(splitSeed))
	trainIdx, testIdx := stratifiedSplit(y, testFraction, rng)

	model := boost.NewClassifier(boost.DefaultConfig())
	if err := model.Fit(ctx, gatherRows(x, trainIdx), gatherInts(y, trainIdx), len(classNames)); err != nil {
		return nil, err
	}

	actual := gatherInts(y, testIdx)
	predicted := make([]int, len(testIdx))
	for i, idx := range testIdx {
		predicted[i] = model.PredictClass(x[idx])
	}

	metrics := ClassificationMetrics{
		Accuracy: dataset.Round(accuracyPercent(actual, predicted), 2),
		F1Score:  dataset.Round(weightedF1(actual, predicted, len(classNames)), 4),
	}

	bundle := &ClassificationBundle{
		Model:          model,
		FeatureColumns: featureCols,
		ClassNames:     classNames,
		Metrics:        metrics,
		TrainedAt:      time.Now().UTC(),
	}
	if err := store.PutClassification(bundle); err != nil {
		return nil, err
	}

	return &ClassificationReport{
		Metrics:         metrics,
		FeatureColumns:  featureCols,
		ClassNames:      classNames,
		TrainingSamples: len(trainIdx),
		TestSamples:     len(testIdx),
		Visualization:   ClassificationViz{ConfusionMatrix: confusionMatrix(actual, predicted, classNames)},
	}, nil
}

func targetVector(t *dataset.Table, col string) []float64 {
	y := make([]float64, t.Len())
	for i, r := range t.Rows() {
		if f, ok := dataset.Float(r[col]); ok {
			y[i] = f
		}
	}
	return y
}

// encodeLevels buckets rates into level labels and encodes them as
// class indices, with class names sorted alphabetically.
func encodeLevels(rates []float64) ([]string, []int) {
	seen := make(map[string]bool)
	labels := make([]string, len(rates))
	for i, rate := range rates {
		labels[i] = EngagementLevel(rate)
		seen[labels[i]] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	y := make([]int, len(labels))
	for i, label := range labels {
		y[i] = index[label]
	}
	return names, y
}

// splitIndices shuffles 0..n-1 and carves off ceil(n*frac) test rows.
func splitIndices(n int, frac float64, rng *rand.Rand) (train, test []int) {
	perm := rng.Perm(n)
	nTest := int(math.Ceil(float64(n) * frac))
	if nTest > n {
		nTest = n
	}
	return perm[nTest:], perm[:nTest]
}

// stratifiedSplit carves a test set per class so rare levels keep
// their share. Classes with a single member go entirely to train.
func stratifiedSplit(y []int, frac float64, rng *rand.Rand) (train, test []int) {
	groups := make(map[int][]int)
	for i, label := range y {
		groups[label] = append(groups[label], i)
	}
	classes := make([]int, 0, len(groups))
	for label := range groups {
		classes = append(classes, label)
	}
	sort.Ints(classes)

	for _, label := range classes {
		members := groups[label]
		order := rng.Perm(len(members))
		if len(members) < 2 {
			train = append(train, members...)
			continue
		}
		nTest := int(math.Ceil(float64(len(members)) * frac))
		if nTest >= len(members) {
			nTest = len(members) - 1
		}
		for i, j := range order {
			if i < nTest {
				test = append(test, members[j])
			} else {
				train = append(train, members[j])
			}
		}
	}
	return train, test
}

func gatherRows(x [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = x[j]
	}
	return out
}

func gatherFloats(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}

func gatherInts(v []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}

func meanSquaredError(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	var sum float64
	for i := range actual {
		d := actual[i] - predicted[i]
		sum += d * d
	}
	return sum / float64(len(actual))
}

func r2Score(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	var mean float64
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	var ssRes, ssTot float64
	for i := range actual {
		d := actual[i] - predicted[i]
		ssRes += d * d
		t := actual[i] - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

func accuracyPercent(actual, predicted []int) float64 {
	if len(actual) == 0 {
		return 0
	}
	var correct int
	for i := range actual {
		if actual[i] == predicted[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(actual)) * 100
}

// weightedF1 averages per-class F1 scores weighted by class support.
func weightedF1(actual, predicted []int, nClasses int) float64 {
	if len(actual) == 0 || nClasses == 0 {
		return 0
	}
	support := make([]float64, nClasses)
	tp := make([]float64, nClasses)
	fp := make([]float64, nClasses)
	fn := make([]float64, nClasses)
	for i := range actual {
		a, p := actual[i], predicted[i]
		support[a]++
		if a == p {
			tp[a]++
		} else {
			fp[p]++
			fn[a]++
		}
	}
	total := float64(len(actual))
	var f1 float64
	for k := 0; k < nClasses; k++ {
		var precision, recall float64
		if tp[k]+fp[k] > 0 {
			precision = tp[k] / (tp[k] + fp[k])
		}
		if tp[k]+fn[k] > 0 {
			recall = tp[k] / (tp[k] + fn[k])
		}
		if precision+recall > 0 {
			f1 += 2 * precision * recall / (precision + recall) * support[k] / total
		}
	}
	return f1
}

// confusionMatrix emits one row per actual class with predicted counts
// keyed by class name, covering every class even when empty.
func confusionMatrix(actual, predicted []int, classNames []string) []ConfusionRow {
	counts := make([][]int, len(classNames))
	for i := range counts {
		counts[i] = make([]int, len(classNames))
	}
	for i := range actual {
		counts[actual[i]][predicted[i]]++
	}
	rows := make([]ConfusionRow, len(classNames))
	for i, name := range classNames {
		row := ConfusionRow{Name: name, Counts: make(map[string]int, len(classNames))}
		for j, other := range classNames {
			row.Counts[other] = counts[i][j]
		}
		rows[i] = row
	}
	return rows
}

// scatterSample picks at most maxScatterPoints actual/predicted pairs
// without replacement, rounded for charting.
func scatterSample(actual, predicted []float64, rng *rand.Rand) []ScatterPoint {
	n := len(actual)
	sample := maxScatterPoints
	if n < sample {
		sample = n
	}
	order := rng.Perm(n)
	points := make([]ScatterPoint, 0, sample)
	for _, idx := range order[:sample] {
		points = append(points, ScatterPoint{
			Actual:    dataset.Round(actual[idx], 2),
			Predicted: dataset.Round(predicted[idx], 2),
		})
	}
	return points
}
