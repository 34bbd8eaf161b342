package api

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentcompass/server/internal/database"
	"rentcompass/server/internal/engine"
	"rentcompass/server/internal/models"
	"rentcompass/server/internal/queue"
)

type Handler struct {
	engine *engine.Engine
	db     *database.Database
	queue  *queue.ListingQueue
	logger *logrus.Logger
}

func NewHandler(eng *engine.Engine, db *database.Database, q *queue.ListingQueue, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		engine: eng,
		db:     db,
		queue:  q,
		logger: logger,
	}
}

// Evaluate runs a rent-fairness evaluation for the posted property.
func (h *Handler) Evaluate(c *gin.Context) {
	var req engine.EvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Failed to parse evaluation request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.engine.Evaluate(c.Request.Context(), req)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.WithError(err).Error("Evaluation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate property"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetComparables exposes the comparable query for inspection and debugging.
func (h *Handler) GetComparables(c *gin.Context) {
	bedrooms := -1
	if raw := c.Query("bedrooms"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bedrooms parameter"})
			return
		}
		bedrooms = parsed
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	city := c.Query("city")
	comparables, err := h.db.FindComparables(c.Request.Context(), bedrooms, city, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get comparables")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get comparables"})
		return
	}

	c.JSON(http.StatusOK, comparables)
}

// IngestListings enqueues comparable listings for batch ingestion.
func (h *Handler) IngestListings(c *gin.Context) {
	var listings []*models.Listing
	if err := c.ShouldBindJSON(&listings); err != nil {
		h.logger.WithError(err).Error("Failed to parse listings payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(listings) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one listing is required"})
		return
	}

	for _, l := range listings {
		if l.Rent <= 0 || l.AreaUnits <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Listings require positive rent and area"})
			return
		}
	}

	if err := h.queue.Push(listings); err != nil {
		h.logger.WithError(err).Error("Failed to enqueue listings")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ingestion queue unavailable"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":   "queued",
		"accepted": len(listings),
	})
}

// Health reports liveness and the size of the comparable pool.
func (h *Handler) Health(c *gin.Context) {
	count, err := h.db.CountProperties()
	if err != nil {
		h.logger.WithError(err).Error("Health check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"properties": count,
	})
}
