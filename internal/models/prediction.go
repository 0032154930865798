package models

// FeatureVector maps a sensor/setting name (e.g. "sensor_2", "setting_1",
// "cycle") to its reading. The set of keys is owned by the trained model.
type FeatureVector map[string]float64

// PredictionRequest is the body of POST /predict.
type PredictionRequest struct {
	Features     FeatureVector `json:"features"`
	CurrentCycle *float64      `json:"current_cycle"` // elapsed cycles at snapshot time; optional
}

// PredictionResponse is the success body of POST /predict.
type PredictionResponse struct {
	PredictedRUL          float64  `json:"predicted_rul"`
	PredictedFailureCycle *float64 `json:"predicted_failure_cycle"` // null unless current_cycle was sent
}
