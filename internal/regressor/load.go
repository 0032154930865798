package regressor

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
)

// Model kinds understood by Decode.
const (
	KindLinear = "linear"
	KindForest = "forest"
)

type modelFile struct {
	Kind string `json:"kind"`

	// linear
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`

	// forest
	Trees []Tree `json:"trees"`
}

// Decode reads a serialized model.
func Decode(r io.Reader) (Regressor, error) {
	var mf modelFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}

	switch mf.Kind {
	case KindLinear:
		names := slices.Sorted(maps.Keys(mf.Coefficients))
		coefs := make([]float64, len(names))
		for i, n := range names {
			coefs[i] = mf.Coefficients[n]
		}
		return NewLinear(mf.Intercept, names, coefs)
	case KindForest:
		return NewForest(mf.Trees)
	default:
		return nil, fmt.Errorf("decode model: unknown kind %q", mf.Kind)
	}
}

// LoadFile opens and decodes the model at path.
func LoadFile(path string) (Regressor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %q: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load model %q: %w", path, err)
	}
	return m, nil
}
