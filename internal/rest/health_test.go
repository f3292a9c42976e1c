package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingxi/domain"
	"lingxi/internal/repository/memory"
)

func TestHealthReportsCatalogAndSampleCounts(t *testing.T) {
	catalogRepo := memory.NewCatalogRepository()
	feedbackRepo := memory.NewFeedbackRepository()

	require.NoError(t, feedbackRepo.Append(context.Background(), domain.FeedbackSample{
		ID:        "s-1",
		CustNo:    "CUST1",
		ProductID: "SAVE_002",
		Feedback:  "interested",
		Label:     1,
	}))

	handler := NewHealthHandler("lingxi", "1.0.0", catalogRepo, feedbackRepo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Health(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "lingxi", body["service"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, float64(17), body["totalProducts"])
	assert.Equal(t, float64(1), body["sampleCount"])
	assert.Contains(t, body, "timestamp")
}
