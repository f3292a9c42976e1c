package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lingxi/pkg/logger"
)

type CatalogCounter interface {
	Count(ctx context.Context) (int, error)
}

type SampleCounter interface {
	CountAll(ctx context.Context) (int, error)
}

type HealthHandler struct {
	serviceName string
	version     string
	catalog     CatalogCounter
	samples     SampleCounter
}

func NewHealthHandler(serviceName, version string, catalog CatalogCounter, samples SampleCounter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		catalog:     catalog,
		samples:     samples,
	}
}

func (h *HealthHandler) Health(c echo.Context) error {
	ctx := c.Request().Context()

	totalProducts, err := h.catalog.Count(ctx)
	if err != nil {
		logger.Error("Failed to count products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	sampleCount, err := h.samples.CountAll(ctx)
	if err != nil {
		logger.Error("Failed to count feedback samples", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"service":       h.serviceName,
		"version":       h.version,
		"totalProducts": totalProducts,
		"sampleCount":   sampleCount,
		"timestamp":     time.Now().Format(time.RFC3339),
	})
}
