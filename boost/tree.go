package boost

import "sort"

// Node is a binary split or, when Leaf is set, a terminal value.
type Node struct {
	Leaf      bool    `json:"leaf,omitempty"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
}

// Tree is a CART regression tree grown on variance reduction.
type Tree struct {
	Root *Node `json:"root"`
}

// Predict walks the tree for one feature vector.
func (t *Tree) Predict(x []float64) float64 {
	n := t.Root
	for n != nil && !n.Leaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	if n == nil {
		return 0
	}
	return n.Value
}

type grower struct {
	x      [][]float64
	y      []float64
	cfg    Config
	leaves int
}

func growTree(x [][]float64, y []float64, cfg Config) *Tree {
	g := &grower{x: x, y: y, cfg: cfg, leaves: 1}
	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}
	return &Tree{Root: g.grow(idx, 0)}
}

func (g *grower) grow(idx []int, depth int) *Node {
	if depth >= g.cfg.MaxDepth || len(idx) < 2*g.cfg.MinLeaf || g.leaves >= g.cfg.MaxLeaves {
		return g.leaf(idx)
	}
	feature, threshold, ok := g.bestSplit(idx)
	if !ok {
		return g.leaf(idx)
	}
	var left, right []int
	for _, i := range idx {
		if g.x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	g.leaves++
	return &Node{
		Feature:   feature,
		Threshold: threshold,
		Left:      g.grow(left, depth+1),
		Right:     g.grow(right, depth+1),
	}
}

func (g *grower) leaf(idx []int) *Node {
	var sum float64
	for _, i := range idx {
		sum += g.y[i]
	}
	value := 0.0
	if len(idx) > 0 {
		value = sum / float64(len(idx))
	}
	return &Node{Leaf: true, Value: value}
}

// bestSplit scans every feature for the threshold with the largest
// squared-error reduction. Candidate thresholds are midpoints between
// adjacent distinct values.
func (g *grower) bestSplit(idx []int) (int, float64, bool) {
	if len(idx) < 2 {
		return 0, 0, false
	}
	nFeatures := len(g.x[idx[0]])
	n := float64(len(idx))

	var totalSum, totalSumSq float64
	for _, i := range idx {
		yv := g.y[i]
		totalSum += yv
		totalSumSq += yv * yv
	}
	parentSSE := totalSumSq - totalSum*totalSum/n

	var (
		bestFeature   int
		bestThreshold float64
		bestGain      float64
		found         bool
	)
	order := make([]int, len(idx))
	for f := 0; f < nFeatures; f++ {
		copy(order, idx)
		feat := f
		sort.Slice(order, func(a, b int) bool {
			return g.x[order[a]][feat] < g.x[order[b]][feat]
		})
		var leftSum, leftSumSq float64
		for pos := 0; pos < len(order)-1; pos++ {
			i := order[pos]
			yv := g.y[i]
			leftSum += yv
			leftSumSq += yv * yv

			cur, next := g.x[i][feat], g.x[order[pos+1]][feat]
			if cur == next {
				continue
			}
			nl := float64(pos + 1)
			nr := n - nl
			if pos+1 < g.cfg.MinLeaf || len(order)-pos-1 < g.cfg.MinLeaf {
				continue
			}
			rightSum := totalSum - leftSum
			rightSumSq := totalSumSq - leftSumSq
			sse := (leftSumSq - leftSum*leftSum/nl) + (rightSumSq - rightSum*rightSum/nr)
			gain := parentSSE - sse
			if gain > bestGain+1e-12 {
				bestFeature = feat
				bestThreshold = (cur + next) / 2
				bestGain = gain
				found = true
			}
		}
	}
	return bestFeature, bestThreshold, found
}
