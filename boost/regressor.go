package boost

import "context"

// Regressor is a least-squares boosted tree ensemble. The zero value
// is not usable; construct with NewRegressor.
type Regressor struct {
	Config Config  `json:"config"`
	Base   float64 `json:"base"`
	Trees  []*Tree `json:"trees"`
}

func NewRegressor(cfg Config) *Regressor {
	return &Regressor{Config: cfg.withDefaults()}
}

// Fit trains the ensemble on x/y. Each stage fits one tree to the
// current residuals. The context is checked between stages.
func (r *Regressor) Fit(ctx context.Context, x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return ErrNoTrainingData
	}
	cfg := r.Config

	var sum float64
	for _, v := range y {
		sum += v
	}
	r.Base = sum / float64(len(y))
	r.Trees = r.Trees[:0]

	preds := make([]float64, len(y))
	for i := range preds {
		preds[i] = r.Base
	}
	residual := make([]float64, len(y))

	for stage := 0; stage < cfg.Trees; stage++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		var sq float64
		for i := range residual {
			residual[i] = y[i] - preds[i]
			sq += residual[i] * residual[i]
		}
		if sq <= 1e-12*float64(len(y)) {
			break
		}
		tree := growTree(x, residual, cfg)
		r.Trees = append(r.Trees, tree)
		for i := range preds {
			preds[i] += cfg.LearningRate * tree.Predict(x[i])
		}
	}
	return nil
}

// Predict returns the ensemble output for one feature vector.
func (r *Regressor) Predict(x []float64) float64 {
	out := r.Base
	for _, t := range r.Trees {
		out += r.Config.LearningRate * t.Predict(x)
	}
	return out
}
