// Package boost implements gradient boosted decision trees for
// regression and multiclass classification. Trained models are plain
// structs so their state round-trips through JSON.
package boost

import "errors"

var (
	ErrNoTrainingData = errors.New("boost: no training data")
	ErrTooFewClasses  = errors.New("boost: need at least two classes")
)

// Config controls how the ensembles are grown.
type Config struct {
	Trees        int     `json:"trees"`
	LearningRate float64 `json:"learning_rate"`
	MaxDepth     int     `json:"max_depth"`
	MaxLeaves    int     `json:"max_leaves"`
	MinLeaf      int     `json:"min_leaf"`
}

// DefaultConfig returns the stock training parameters.
func DefaultConfig() Config {
	return Config{
		Trees:        100,
		LearningRate: 0.1,
		MaxDepth:     6,
		MaxLeaves:    31,
		MinLeaf:      1,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Trees <= 0 {
		c.Trees = d.Trees
	}
	if c.LearningRate <= 0 {
		c.LearningRate = d.LearningRate
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = d.MaxDepth
	}
	if c.MaxLeaves <= 0 {
		c.MaxLeaves = d.MaxLeaves
	}
	if c.MinLeaf <= 0 {
		c.MinLeaf = d.MinLeaf
	}
	return c
}
