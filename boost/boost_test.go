package boost

import (
	"context"
	"encoding/json"
	"math"
	"testing"
)

func TestRegressorFitsSimpleFunction(t *testing.T) {
	// y = 2*x0 + 1, learnable exactly by axis-aligned splits.
	var x [][]float64
	var y []float64
	for i := 0; i < 40; i++ {
		v := float64(i)
		x = append(x, []float64{v})
		y = append(y, 2*v+1)
	}

	r := NewRegressor(DefaultConfig())
	if err := r.Fit(context.Background(), x, y); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	for i, xi := range x {
		got := r.Predict(xi)
		if math.Abs(got-y[i]) > 2 {
			t.Fatalf("prediction for x=%v too far off: got %v, want %v", xi, got, y[i])
		}
	}
}

func TestRegressorRejectsEmptyInput(t *testing.T) {
	r := NewRegressor(DefaultConfig())
	if err := r.Fit(context.Background(), nil, nil); err != ErrNoTrainingData {
		t.Fatalf("expected ErrNoTrainingData, got %v", err)
	}
}

func TestRegressorConstantTargetShortCircuits(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}}
	y := []float64{5, 5, 5}

	r := NewRegressor(DefaultConfig())
	if err := r.Fit(context.Background(), x, y); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}
	if len(r.Trees) != 0 {
		t.Fatalf("expected no boosting stages for a constant target, got %d", len(r.Trees))
	}
	if got := r.Predict([]float64{10}); got != 5 {
		t.Fatalf("expected base prediction 5, got %v", got)
	}
}

func TestRegressorHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRegressor(DefaultConfig())
	err := r.Fit(ctx, [][]float64{{1}, {2}}, []float64{1, 2})
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClassifierSeparatesClasses(t *testing.T) {
	// Three bands on one feature.
	var x [][]float64
	var y []int
	for i := 0; i < 30; i++ {
		v := float64(i)
		x = append(x, []float64{v})
		switch {
		case v < 10:
			y = append(y, 0)
		case v < 20:
			y = append(y, 1)
		default:
			y = append(y, 2)
		}
	}

	c := NewClassifier(DefaultConfig())
	if err := c.Fit(context.Background(), x, y, 3); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	checks := map[float64]int{2: 0, 15: 1, 27: 2}
	for v, want := range checks {
		if got := c.PredictClass([]float64{v}); got != want {
			t.Fatalf("expected class %d for x=%v, got %d", want, v, got)
		}
	}

	scores := c.Score([]float64{15})
	if len(scores) != 3 {
		t.Fatalf("expected 3 class scores, got %d", len(scores))
	}
	probs := make([]float64, len(scores))
	softmaxInto(scores, probs)
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("expected probabilities summing to 1, got %v", sum)
	}
}

func TestClassifierRejectsSingleClass(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	err := c.Fit(context.Background(), [][]float64{{1}, {2}}, []int{0, 0}, 1)
	if err != ErrTooFewClasses {
		t.Fatalf("expected ErrTooFewClasses, got %v", err)
	}
}

func TestRegressorSurvivesJSONRoundTrip(t *testing.T) {
	x := [][]float64{{0}, {1}, {2}, {3}, {4}, {5}}
	y := []float64{0, 1, 2, 3, 4, 5}

	r := NewRegressor(DefaultConfig())
	if err := r.Fit(context.Background(), x, y); err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	var back Regressor
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	for _, xi := range x {
		if got, want := back.Predict(xi), r.Predict(xi); got != want {
			t.Fatalf("decoded model diverged at %v: got %v, want %v", xi, got, want)
		}
	}
}
