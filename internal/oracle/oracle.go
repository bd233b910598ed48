// Package oracle is the boundary to the disease classifier: it loads
// the model's schema and label-map artifacts and talks to the model
// server over HTTP. The classifier itself is a black box; only its
// contract lives here.
package oracle

import "errors"

// ErrModelUnavailable is returned when the model's schema or label-map
// artifacts cannot be loaded. Callers must not attempt prediction.
var ErrModelUnavailable = errors.New("model artifacts unavailable")

// Prediction is one ranked classifier result.
type Prediction struct {
	Disease     string  `json:"disease"`
	Probability float64 `json:"probability"`
}
