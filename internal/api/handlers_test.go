package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentcompass/server/internal/database"
	"rentcompass/server/internal/engine"
	"rentcompass/server/internal/models"
	"rentcompass/server/internal/queue"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, *queue.ListingQueue) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	logger := logrus.New()
	eng := engine.NewEngine(db, engine.DefaultParams(), logger)
	q := queue.NewListingQueue(10, logger)

	router := gin.New()
	router.Use(RequestID())
	SetupRoutes(router, NewHandler(eng, db, q, logger))
	return router, db, q
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func evaluationBody(rent float64) map[string]interface{} {
	return map[string]interface{}{
		"propertyDetails": map[string]interface{}{
			"rent":      rent,
			"areaUnits": 1000,
			"bedrooms":  2,
			"bathrooms": 1,
			"location":  "Sacramento, CA",
			"condition": "Good",
			"amenities": []string{},
		},
		"metrics": map[string]interface{}{
			"locationImportance":   50,
			"conditionImportance":  50,
			"sizeImportance":       50,
			"amenitiesImportance":  50,
			"marketRateImportance": 50,
		},
		"marketData": map[string]interface{}{
			"averageRent": 1500,
			"comparables": []map[string]interface{}{
				{"rent": 1450, "areaUnits": 950},
				{"rent": 1550, "areaUnits": 1050},
			},
		},
	}
}

func TestEvaluate_OK(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := postJSON(t, router, "/api/evaluate", evaluationBody(1500))
	require.Equal(t, http.StatusOK, w.Code)

	var result models.EvaluationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.GreaterOrEqual(t, result.FairnessScore, 0)
	assert.LessOrEqual(t, result.FairnessScore, 100)
	assert.NotEmpty(t, result.Analysis)
	assert.NotEmpty(t, result.Summary)
	assert.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, result.FairPriceRange.Min, result.FairPriceRange.Max)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestEvaluate_ValidationError(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	w := postJSON(t, router, "/api/evaluate", evaluationBody(0))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "rent")
}

func TestEvaluate_MalformedBody(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluate_NoMarketDataWithEmptyStore(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	body := evaluationBody(1500)
	delete(body, "marketData")

	w := postJSON(t, router, "/api/evaluate", body)
	require.Equal(t, http.StatusOK, w.Code, "empty comparable store must not fail the evaluation")

	var result models.EvaluationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Analysis)
	assert.NotEmpty(t, result.Summary)
}

func TestGetComparables(t *testing.T) {
	router, db, _ := setupTestRouter(t)

	seedPath := filepath.Join(t.TempDir(), "seed.json")
	writeSeedFile(t, seedPath)
	_, err := db.SeedFromFile(seedPath)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/comparables?bedrooms=2&city=Sacramento&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var comps []models.ComparableProperty
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comps))
	assert.NotEmpty(t, comps)
}

func TestGetComparables_BadBedrooms(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/comparables?bedrooms=two", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestListings(t *testing.T) {
	router, _, q := setupTestRouter(t)

	listings := []map[string]interface{}{
		{"address": "123 J St", "city": "Sacramento", "rent": 1500, "area_units": 1000, "bedrooms": 2},
	}
	w := postJSON(t, router, "/api/properties", listings)

	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, q.Len())
}

func TestIngestListings_Invalid(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty batch", []map[string]interface{}{}},
		{"zero rent", []map[string]interface{}{{"rent": 0, "area_units": 1000}}},
		{"zero area", []map[string]interface{}{{"rent": 1500, "area_units": 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/properties", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func writeSeedFile(t *testing.T, path string) {
	t.Helper()
	listings := []models.Listing{
		{Address: "123 J St", City: "Sacramento", Rent: 1450, AreaUnits: 950, Bedrooms: 2, Bathrooms: 1},
		{Address: "456 K St", City: "Sacramento", Rent: 1550, AreaUnits: 1050, Bedrooms: 2, Bathrooms: 1},
	}
	data, err := json.Marshal(listings)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}
