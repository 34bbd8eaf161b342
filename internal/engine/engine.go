package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"rentcompass/server/internal/models"
)

// ValidationError marks a request rejected before scoring. The API layer
// maps it to a 4xx response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// EvaluationRequest is the engine's input contract. PropertyDetails and
// Metrics are required; MarketData is optional and, when absent, derived
// from the comparable store.
type EvaluationRequest struct {
	PropertyDetails *models.PropertyDetails `json:"propertyDetails"`
	Metrics         *models.Metrics         `json:"metrics"`
	MarketData      *models.MarketData      `json:"marketData,omitempty"`
}

// Engine runs the rent-fairness evaluation pipeline. It holds no per-request
// state; concurrent evaluations are safe.
type Engine struct {
	selector *Selector
	scorer   *Scorer
	params   Params
	logger   *logrus.Logger
}

func NewEngine(store ComparableStore, params Params, logger *logrus.Logger) *Engine {
	return &Engine{
		selector: NewSelector(store, params, logger),
		scorer:   NewScorer(params, nil),
		params:   params,
		logger:   logger,
	}
}

// Evaluate runs one full evaluation: validate, gather market data, score,
// recommend, assemble. A missing or failing comparable store never fails the
// evaluation; the fallback market figures are used instead.
func (e *Engine) Evaluate(ctx context.Context, req EvaluationRequest) (*models.EvaluationResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	subject := req.PropertyDetails

	market := e.marketSnapshot(ctx, req)
	e.logger.WithFields(logrus.Fields{
		"source":      market.Source,
		"comparables": len(market.Comparables),
	}).Debug("Market snapshot ready")

	score, priceRange := e.scorer.Score(subject, *req.Metrics, market)
	recommendations := Recommend(subject, score, priceRange)

	return Assemble(subject, market, score, priceRange, recommendations), nil
}

func (e *Engine) marketSnapshot(ctx context.Context, req EvaluationRequest) MarketSnapshot {
	fallbackAvg := req.PropertyDetails.AreaUnits * e.params.FallbackRatePerArea

	if req.MarketData != nil {
		if req.MarketData.AverageRent > 0 {
			fallbackAvg = req.MarketData.AverageRent
		}
		return Aggregate(req.MarketData.Comparables, fallbackAvg, e.params.ReferenceArea, SourceProvided)
	}

	comparables := e.selector.SelectComparables(ctx, req.PropertyDetails)
	return Aggregate(comparables, fallbackAvg, e.params.ReferenceArea, SourceComparables)
}

func validate(req EvaluationRequest) error {
	if req.PropertyDetails == nil {
		return &ValidationError{Field: "propertyDetails", Message: "property details are required"}
	}
	if req.Metrics == nil {
		return &ValidationError{Field: "metrics", Message: "metrics are required"}
	}
	if req.PropertyDetails.Rent <= 0 {
		return &ValidationError{Field: "propertyDetails.rent", Message: "rent must be a positive amount"}
	}
	if req.PropertyDetails.AreaUnits <= 0 {
		return &ValidationError{Field: "propertyDetails.areaUnits", Message: "area must be a positive number"}
	}
	return nil
}
