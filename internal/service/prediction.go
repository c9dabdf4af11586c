package service

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

const unknownClassMessage = "ไม่สามารถจำแนกได้ กรุณาส่งภาพที่มีผักดอกมาอีกครั้ง"

// PredictionConfig calibrates raw classifier confidence.
type PredictionConfig struct {
	// Threshold is the lowest scaled confidence that is still reported as a
	// label.
	Threshold float64
	Scale     float64
}

// Prediction classifies uploaded images and enriches accepted labels with
// species metadata.
type Prediction struct {
	classifier model.Classifier
	catalog    model.SpeciesCatalog
	images     model.ImageStore
	cfg        PredictionConfig
	now        func() time.Time
	logger     *logger.Logger
}

// NewPrediction creates the prediction service. images may be nil when
// uploads are not archived.
func NewPrediction(
	classifier model.Classifier,
	catalog model.SpeciesCatalog,
	images model.ImageStore,
	cfg PredictionConfig,
	logger *logger.Logger,
) *Prediction {
	return &Prediction{
		classifier: classifier,
		catalog:    catalog,
		images:     images,
		cfg:        cfg,
		now:        time.Now,
		logger:     logger,
	}
}

// Predict labels image. A scaled confidence below the threshold is reported
// as the unknown class with an explanatory message.
func (p *Prediction) Predict(ctx context.Context, image []byte, contentType string) (model.PredictionResult, error) {
	if len(image) == 0 {
		return model.PredictionResult{}, apierror.NewErrInvalidRequest("image is empty")
	}

	p.archive(ctx, image, contentType)

	raw, err := p.classifier.Classify(ctx, image, contentType)
	if err != nil {
		if _, ok := apierror.As(err); ok {
			return model.PredictionResult{}, err
		}
		p.logger.Error("Prediction service: classifier call failed",
			"error", err.Error())
		return model.PredictionResult{}, apierror.NewErrClassifierUnavailable()
	}

	confidence := roundTo(raw.Confidence*p.cfg.Scale, 4)

	p.logger.Debug("Prediction service: image classified",
		"class_name", raw.ClassName,
		"raw_confidence", raw.Confidence,
		"confidence", confidence)

	if confidence < p.cfg.Threshold {
		return model.PredictionResult{
			ClassName:  model.UnknownClassName,
			Confidence: confidence,
			Message:    unknownClassMessage,
		}, nil
	}

	result := model.PredictionResult{
		ClassName:  raw.ClassName,
		Confidence: confidence,
	}
	if s, ok := p.catalog.Lookup(raw.ClassName); ok {
		result.Species = &s
	} else {
		p.logger.Warn("Prediction service: classifier returned label outside catalog",
			"class_name", raw.ClassName)
	}

	return result, nil
}

// archive stores the upload for later dataset curation. Failures are logged
// and do not affect the prediction.
func (p *Prediction) archive(ctx context.Context, image []byte, contentType string) {
	if p.images == nil {
		return
	}

	key := p.imageKey()
	if err := p.images.Put(ctx, key, bytes.NewReader(image), int64(len(image)), contentType); err != nil {
		p.logger.Warn("Prediction service: failed to archive image",
			"key", key,
			"error", err.Error())
		return
	}

	p.logger.Debug("Prediction service: image archived",
		"key", key)
}

func (p *Prediction) imageKey() string {
	now := p.now().UTC()
	return fmt.Sprintf("predictions/%04d/%02d/%s", now.Year(), int(now.Month()), uuid.NewString())
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
