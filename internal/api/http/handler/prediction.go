package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/response"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

const (
	// MaxImageBytes is the largest accepted upload.
	MaxImageBytes = 10 << 20

	imageField = "file"
	// multipart framing around the image.
	formOverheadBytes = 1 << 20
)

// PredictionService classifies an uploaded image.
type PredictionService interface {
	Predict(ctx context.Context, image []byte, contentType string) (model.PredictionResult, error)
}

// Prediction handles image uploads for classification.
type Prediction struct {
	service PredictionService
	logger  *logger.Logger
}

// NewPrediction creates a new Prediction handler.
func NewPrediction(service PredictionService, logger *logger.Logger) *Prediction {
	return &Prediction{service: service, logger: logger}
}

// predictionResponse flattens species metadata next to the label. The outer
// class_name shadows the one of the embedded record.
type predictionResponse struct {
	ClassName  string  `json:"class_name"`
	Confidence float64 `json:"confidence"`
	Message    string  `json:"message,omitempty"`
	*model.Species
}

// Predict reads the multipart "file" field and returns the calibrated label.
func (h *Prediction) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxImageBytes+formOverheadBytes)

	file, header, err := r.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, r, h.logger, imageTooLarge())
			return
		}
		handleError(w, r, h.logger, apierror.NewErrInvalidRequest(fmt.Sprintf("multipart field %q is required", imageField)))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
	if err != nil {
		handleError(w, r, h.logger, apierror.NewErrInvalidRequest("failed to read image"))
		return
	}
	if len(image) > MaxImageBytes {
		handleError(w, r, h.logger, imageTooLarge())
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(image)
	}

	result, err := h.service.Predict(r.Context(), image, contentType)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, predictionResponse{
		ClassName:  result.ClassName,
		Confidence: result.Confidence,
		Message:    result.Message,
		Species:    result.Species,
	})
}

func imageTooLarge() error {
	return apierror.NewErrInvalidRequest(fmt.Sprintf("image exceeds %d MiB", MaxImageBytes>>20))
}
