package boost

import (
	"context"
	"fmt"
	"math"
)

// Classifier is a softmax boosted ensemble with one tree per class per
// stage. Labels are dense class indices 0..NClasses-1.
type Classifier struct {
	Config   Config    `json:"config"`
	NClasses int       `json:"n_classes"`
	Base     []float64 `json:"base"`
	Trees    [][]*Tree `json:"trees"`
}

func NewClassifier(cfg Config) *Classifier {
	return &Classifier{Config: cfg.withDefaults()}
}

// Fit trains the ensemble on x and integer labels y. Initial scores
// are smoothed log priors; each stage fits one tree per class to the
// softmax gradient. The context is checked between stages.
func (c *Classifier) Fit(ctx context.Context, x [][]float64, y []int, nClasses int) error {
	if len(x) == 0 || len(x) != len(y) {
		return ErrNoTrainingData
	}
	if nClasses < 2 {
		return ErrTooFewClasses
	}
	cfg := c.Config
	n := len(y)

	counts := make([]float64, nClasses)
	for _, yi := range y {
		if yi < 0 || yi >= nClasses {
			return fmt.Errorf("boost: label %d out of range [0,%d)", yi, nClasses)
		}
		counts[yi]++
	}

	c.NClasses = nClasses
	c.Base = make([]float64, nClasses)
	for k := range counts {
		c.Base[k] = math.Log((counts[k] + 1) / float64(n+nClasses))
	}
	c.Trees = c.Trees[:0]

	scores := make([][]float64, n)
	for i := range scores {
		scores[i] = append([]float64(nil), c.Base...)
	}
	probs := make([][]float64, n)
	for i := range probs {
		probs[i] = make([]float64, nClasses)
	}
	residual := make([]float64, n)

	for stage := 0; stage < cfg.Trees; stage++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := range scores {
			softmaxInto(scores[i], probs[i])
		}
		stageTrees := make([]*Tree, nClasses)
		for k := 0; k < nClasses; k++ {
			for i := range residual {
				target := 0.0
				if y[i] == k {
					target = 1.0
				}
				residual[i] = target - probs[i][k]
			}
			stageTrees[k] = growTree(x, residual, cfg)
		}
		for i := range scores {
			for k, tree := range stageTrees {
				scores[i][k] += cfg.LearningRate * tree.Predict(x[i])
			}
		}
		c.Trees = append(c.Trees, stageTrees)
	}
	return nil
}

// Score returns the raw per-class scores for one feature vector.
func (c *Classifier) Score(x []float64) []float64 {
	out := append([]float64(nil), c.Base...)
	for _, stage := range c.Trees {
		for k, tree := range stage {
			out[k] += c.Config.LearningRate * tree.Predict(x)
		}
	}
	return out
}

// PredictClass returns the index of the highest-scoring class.
func (c *Classifier) PredictClass(x []float64) int {
	scores := c.Score(x)
	best := 0
	for k := 1; k < len(scores); k++ {
		if scores[k] > scores[best] {
			best = k
		}
	}
	return best
}

func softmaxInto(scores, out []float64) {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - max)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
}
