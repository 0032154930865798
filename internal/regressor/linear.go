package regressor

import (
	"errors"

	"engine_rul/internal/models"
)

// Linear is y = intercept + sum(coef[f] * x[f]).
type Linear struct {
	intercept float64
	features  []string
	coefs     []float64
}

// NewLinear builds a linear model. features and coefs are parallel.
func NewLinear(intercept float64, features []string, coefs []float64) (*Linear, error) {
	if len(features) != len(coefs) {
		return nil, errors.New("linear model: features and coefficients differ in length")
	}
	return &Linear{
		intercept: intercept,
		features:  append([]string(nil), features...),
		coefs:     append([]float64(nil), coefs...),
	}, nil
}

func (m *Linear) Predict(features models.FeatureVector) (float64, error) {
	y := m.intercept
	for i, name := range m.features {
		x, err := lookup(features, name)
		if err != nil {
			return 0, err
		}
		y += m.coefs[i] * x
	}
	return y, nil
}
