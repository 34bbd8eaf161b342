package models

import "time"

// PropertyDetails describes the subject rental being evaluated.
type PropertyDetails struct {
	Rent            float64          `json:"rent"`
	AreaUnits       float64          `json:"areaUnits"`
	Bedrooms        int              `json:"bedrooms"`
	Bathrooms       float64          `json:"bathrooms"`
	Location        string           `json:"location"`
	LocationDetails *LocationDetails `json:"locationDetails,omitempty"`
	Amenities       []string         `json:"amenities"`
	Condition       string           `json:"condition"`
}

// LocationDetails is the structured, geocoded form of a location. Its
// presence signals a resolved, high-confidence address.
type LocationDetails struct {
	Street    string   `json:"street"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zipCode"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Metrics holds the caller's importance weights, each in [0,100]. They are
// independent emphases, not a distribution; they need not sum to 100.
type Metrics struct {
	LocationImportance   float64 `json:"locationImportance"`
	ConditionImportance  float64 `json:"conditionImportance"`
	SizeImportance       float64 `json:"sizeImportance"`
	AmenitiesImportance  float64 `json:"amenitiesImportance"`
	MarketRateImportance float64 `json:"marketRateImportance"`
}

// ComparableProperty is a market listing used as a pricing reference.
// Instances are built fresh per evaluation and never persisted.
type ComparableProperty struct {
	Rent      float64  `json:"rent"`
	AreaUnits float64  `json:"areaUnits"`
	Bedrooms  int      `json:"bedrooms"`
	Bathrooms float64  `json:"bathrooms"`
	Distance  *float64 `json:"distance,omitempty"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// MarketData is a caller-supplied market summary. When present the engine
// trusts it as-is instead of querying the comparable store.
type MarketData struct {
	AverageRent float64              `json:"averageRent"`
	Comparables []ComparableProperty `json:"comparables"`
}

// PriceRange is an inclusive fair-rent band, min <= max.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EvaluationResult is the engine's sole output artifact.
type EvaluationResult struct {
	FairnessScore   int        `json:"fairnessScore"`
	Analysis        string     `json:"analysis"`
	Recommendations []string   `json:"recommendations"`
	FairPriceRange  PriceRange `json:"fairPriceRange"`
	Summary         string     `json:"summary"`
}

// Listing is a stored comparable listing row. This is the ingestion-side
// shape; evaluation reads rows back as ComparableProperty.
type Listing struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Rent      float64   `json:"rent"`
	AreaUnits float64   `json:"area_units" gorm:"column:area_units"`
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms float64   `json:"bathrooms"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps gorm writes on the same table the raw query side reads.
func (Listing) TableName() string {
	return "properties"
}
