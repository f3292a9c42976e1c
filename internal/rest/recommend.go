package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"lingxi/domain"
	"lingxi/pkg/logger"
	"lingxi/pkg/metrics"
)

type RecommendService interface {
	NextRecommendations(ctx context.Context, custNo string) ([]domain.Recommendation, domain.PreferenceSummary, error)
	DebugRecommend(ctx context.Context, custNo string) ([]domain.DebugRecommendation, error)
}

type RecommendHandler struct {
	recommendService RecommendService
	timeout          time.Duration
}

func NewRecommendHandler(recommendService RecommendService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		timeout:          10 * time.Second,
	}
}

// NextRecommendations serves the feedback-adjusted list together with the
// preference summary the re-ranker derived from the samples.
func (h *RecommendHandler) NextRecommendations(c echo.Context) error {
	custNo := c.Param("custNo")
	if custNo == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "custNo is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	timer := prometheus.NewTimer(metrics.RecommendDuration)
	defer timer.ObserveDuration()

	recommendations, analysis, err := h.recommendService.NextRecommendations(ctx, custNo)
	if err != nil {
		logger.Error("Failed to build next recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recommendations":  recommendations,
		"feedbackAnalysis": analysis,
	})
}

// DebugRecommendations exposes the raw per-rule score breakdown.
func (h *RecommendHandler) DebugRecommendations(c echo.Context) error {
	custNo := c.Param("custNo")
	if custNo == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "custNo is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	breakdown, err := h.recommendService.DebugRecommend(ctx, custNo)
	if err != nil {
		logger.Error("Failed to build debug recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(breakdown))
}
