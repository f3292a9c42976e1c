package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedbackService "lingxi/business/feedback"
	"lingxi/internal/repository/memory"
)

func newFeedbackTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder, *FeedbackHandler) {
	t.Helper()

	svc := feedbackService.NewService(memory.NewFeedbackRepository(), memory.NewCatalogRepository())
	handler := NewFeedbackHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/customers/:custNo/feedback")
	c.SetParamNames("custNo")
	c.SetParamValues("CUST1")

	return c, rec, handler
}

func TestSubmitFeedbackSingle(t *testing.T) {
	c, rec, handler := newFeedbackTestContext(t, `{"productId":"SAVE_002","feedback":"interested"}`)

	require.NoError(t, handler.SubmitFeedback(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "sample")
	assert.Contains(t, body, "stats")
	assert.Equal(t, "+0.5%", body["accuracyImprovement"])

	sample := body["sample"].(map[string]interface{})
	assert.Equal(t, "SAVE_002", sample["product_id"])
	assert.Equal(t, float64(1), sample["label"])
}

func TestSubmitFeedbackBatch(t *testing.T) {
	c, rec, handler := newFeedbackTestContext(t,
		`{"feedbacks":[{"productId":"SAVE_002","feedback":"interested"},{"productId":"WEALTH_002","feedback":"not_interested"}]}`)

	require.NoError(t, handler.SubmitFeedback(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, true, body["success"])
	samples := body["samples"].([]interface{})
	require.Len(t, samples, 2)

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_samples"])
	assert.Equal(t, float64(1), stats["positive_samples"])
}

func TestSubmitFeedbackUnknownProductIs404(t *testing.T) {
	c, rec, handler := newFeedbackTestContext(t, `{"productId":"NOPE_001","feedback":"interested"}`)

	require.NoError(t, handler.SubmitFeedback(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitFeedbackMissingFieldsIs400(t *testing.T) {
	c, rec, handler := newFeedbackTestContext(t, `{"productId":"SAVE_002"}`)

	require.NoError(t, handler.SubmitFeedback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitFeedbackEmptyBatchIs400(t *testing.T) {
	c, rec, handler := newFeedbackTestContext(t, `{"feedbacks":[]}`)

	require.NoError(t, handler.SubmitFeedback(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "non-empty list")
}

func TestSubmitFeedbackBadBatchLeavesNothingStored(t *testing.T) {
	c, rec, handler := newFeedbackTestContext(t,
		`{"feedbacks":[{"productId":"SAVE_002","feedback":"interested"},{"productId":"NOPE_001","feedback":"interested"}]}`)

	require.NoError(t, handler.SubmitFeedback(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
