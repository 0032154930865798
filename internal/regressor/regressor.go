// Package regressor holds the model boundary of the inference path: anything
// that maps a feature row to a scalar remaining-useful-life estimate.
package regressor

import (
	"fmt"

	"engine_rul/internal/models"
)

// Regressor predicts a single scalar from one feature row.
// Implementations must be safe for concurrent use after construction.
type Regressor interface {
	Predict(features models.FeatureVector) (float64, error)
}

// MissingFeatureError reports a feature the model needs but the row lacks.
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("feature %q is required by the model but missing from the input", e.Feature)
}

func lookup(features models.FeatureVector, name string) (float64, error) {
	v, ok := features[name]
	if !ok {
		return 0, &MissingFeatureError{Feature: name}
	}
	return v, nil
}
