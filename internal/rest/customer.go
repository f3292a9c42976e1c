package rest

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"lingxi/business/customer"
	"lingxi/domain"
	"lingxi/pkg/logger"
	"lingxi/pkg/metrics"
)

type CustomerResolver interface {
	Resolve(custNo string) domain.CustomerProfile
	ResolveRisk(custNo string) domain.RiskProfile
	Describe(custNo string) string
}

type CustomerRecommender interface {
	Recommend(ctx context.Context, custNo string) ([]domain.Recommendation, error)
	Insight(customer domain.CustomerProfile, risk domain.RiskProfile) domain.CustomerInsight
}

type SampleReader interface {
	Samples(ctx context.Context, custNo string) ([]domain.FeedbackSample, error)
}

type CustomerHandler struct {
	resolver    CustomerResolver
	recommender CustomerRecommender
	samples     SampleReader
	timeout     time.Duration
}

func NewCustomerHandler(resolver CustomerResolver, recommender CustomerRecommender, samples SampleReader) *CustomerHandler {
	return &CustomerHandler{
		resolver:    resolver,
		recommender: recommender,
		samples:     samples,
		timeout:     10 * time.Second,
	}
}

// GetCustomer serves the full advisor view for one customer: the resolved
// profiles, the current recommendations, the collected feedback and the
// derived insight, in a single payload.
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	custNo := c.Param("custNo")
	if custNo == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "custNo is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	timer := prometheus.NewTimer(metrics.RecommendDuration)
	defer timer.ObserveDuration()

	profile := h.resolver.Resolve(custNo)
	risk := h.resolver.ResolveRisk(custNo)

	recommendations, err := h.recommender.Recommend(ctx, custNo)
	if err != nil {
		logger.Error("Failed to build recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	samples, err := h.samples.Samples(ctx, custNo)
	if err != nil {
		logger.Error("Failed to load feedback samples", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"customer":        profile,
		"riskProfile":     risk,
		"recommendations": recommendations,
		"samples":         samples,
		"customerInsight": h.recommender.Insight(profile, risk),
	})
}

// GetRandomCustomer picks one customer number from the demo pool so the
// frontend can start a session without knowing any numbers in advance.
func (h *CustomerHandler) GetRandomCustomer(c echo.Context) error {
	custNo := customer.RandomPool[rand.Intn(len(customer.RandomPool))]
	profile := h.resolver.Resolve(custNo)
	risk := h.resolver.ResolveRisk(custNo)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"custNo":      custNo,
		"description": h.resolver.Describe(custNo),
		"preview": map[string]interface{}{
			"age":       profile.Age,
			"gender":    profile.Gender,
			"riskLevel": risk.OverallRisk,
		},
	})
}
