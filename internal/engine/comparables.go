package engine

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/sirupsen/logrus"

	"rentcompass/server/internal/models"
)

// ComparableStore is the read-only slice of the property store the engine
// depends on.
type ComparableStore interface {
	FindComparables(ctx context.Context, bedrooms int, city string, limit int) ([]models.ComparableProperty, error)
}

// Selector retrieves a bounded comparable set for a subject property. A
// store failure or empty result is not an error here; downstream stages are
// built to handle an empty set.
type Selector struct {
	store  ComparableStore
	params Params
	logger *logrus.Logger
}

func NewSelector(store ComparableStore, params Params, logger *logrus.Logger) *Selector {
	return &Selector{
		store:  store,
		params: params,
		logger: logger,
	}
}

// SelectComparables queries the store with the coarse comparable filters,
// bounded by the configured timeout. Fail-open: any store error degrades to
// an empty set.
func (s *Selector) SelectComparables(ctx context.Context, subject *models.PropertyDetails) []models.ComparableProperty {
	if s.store == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.params.StoreTimeout)
	defer cancel()

	city := ""
	if subject.LocationDetails != nil {
		city = subject.LocationDetails.City
	}

	comparables, err := s.store.FindComparables(ctx, subject.Bedrooms, city, s.params.ComparableLimit)
	if err != nil {
		s.logger.WithError(err).Warn("Comparable store query failed, proceeding without comparables")
		return nil
	}

	s.annotateDistances(subject, comparables)
	return comparables
}

// annotateDistances fills in great-circle distance (km) for comparables that
// carry coordinates, when the subject's location is geocoded.
func (s *Selector) annotateDistances(subject *models.PropertyDetails, comparables []models.ComparableProperty) {
	loc := subject.LocationDetails
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil {
		return
	}
	origin := orb.Point{*loc.Longitude, *loc.Latitude}

	for i := range comparables {
		c := &comparables[i]
		if c.Latitude == nil || c.Longitude == nil {
			continue
		}
		km := geo.Distance(origin, orb.Point{*c.Longitude, *c.Latitude}) / 1000
		c.Distance = &km
	}
}
