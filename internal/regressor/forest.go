package regressor

import (
	"errors"
	"fmt"

	"engine_rul/internal/models"
)

// Node is one node of a regression tree in flattened form. Leaves have
// Left == Right == -1 and carry Value; split nodes send rows with
// x[Feature] <= Threshold to Left.
type Node struct {
	Feature   string  `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value,omitempty"`
}

func (n Node) isLeaf() bool { return n.Left < 0 && n.Right < 0 }

// Tree is a flattened regression tree rooted at index 0.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

func (t Tree) validate() error {
	if len(t.Nodes) == 0 {
		return errors.New("empty tree")
	}
	for i, n := range t.Nodes {
		if n.isLeaf() {
			continue
		}
		if n.Feature == "" {
			return fmt.Errorf("node %d: split without feature", i)
		}
		// children must point forward, which also rules out cycles
		if n.Left <= i || n.Right <= i || n.Left >= len(t.Nodes) || n.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d: child index out of range", i)
		}
	}
	return nil
}

func (t Tree) predict(features models.FeatureVector) (float64, error) {
	i := 0
	for {
		n := t.Nodes[i]
		if n.isLeaf() {
			return n.Value, nil
		}
		x, err := lookup(features, n.Feature)
		if err != nil {
			return 0, err
		}
		if x <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Forest averages the output of its trees, like a random forest regressor.
type Forest struct {
	trees []Tree
}

func NewForest(trees []Tree) (*Forest, error) {
	if len(trees) == 0 {
		return nil, errors.New("forest model: no trees")
	}
	for i, t := range trees {
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("forest model: tree %d: %w", i, err)
		}
	}
	return &Forest{trees: trees}, nil
}

func (f *Forest) Predict(features models.FeatureVector) (float64, error) {
	var sum float64
	for _, t := range f.trees {
		v, err := t.predict(features)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(f.trees)), nil
}
