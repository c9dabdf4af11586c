package model

import "context"

// UnknownClassName is reported when the classifier is not confident enough.
const UnknownClassName = "Unknown"

// Prediction is the raw classifier output for one image.
type Prediction struct {
	ClassName  string  `json:"class_name"`
	Confidence float64 `json:"confidence"`
}

// PredictionResult is a calibrated prediction. Species is set only when the
// label was accepted and is present in the catalog; Message only when the
// label was rejected.
type PredictionResult struct {
	ClassName  string
	Confidence float64
	Message    string
	Species    *Species
}

// Classifier labels an image.
type Classifier interface {
	Classify(ctx context.Context, image []byte, contentType string) (Prediction, error)
}
