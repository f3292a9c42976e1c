package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"lingxi/business/feedback"
	"lingxi/domain"
	"lingxi/pkg/logger"
)

type FeedbackService interface {
	Record(ctx context.Context, custNo string, item feedback.Item) (domain.FeedbackSample, error)
	RecordBatch(ctx context.Context, custNo string, items []feedback.Item) ([]domain.FeedbackSample, error)
	Samples(ctx context.Context, custNo string) ([]domain.FeedbackSample, error)
	Stats(ctx context.Context, custNo string) (domain.SampleStats, error)
}

type FeedbackHandler struct {
	feedbackService FeedbackService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewFeedbackHandler(feedbackService FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

// FeedbackRequest accepts both shapes the frontend sends: a single
// productId/feedback pair, or a feedbacks array for batch submission.
// Feedbacks is a pointer so a present-but-empty array still takes the
// batch path and gets the empty-batch error.
type FeedbackRequest struct {
	ProductID string           `json:"productId"`
	Feedback  string           `json:"feedback"`
	Feedbacks *[]feedback.Item `json:"feedbacks"`
}

func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	custNo := c.Param("custNo")
	if custNo == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "custNo is required"})
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if req.Feedbacks != nil {
		return h.submitBatch(c, ctx, custNo, *req.Feedbacks)
	}
	return h.submitSingle(c, ctx, custNo, feedback.Item{ProductID: req.ProductID, Feedback: req.Feedback})
}

func (h *FeedbackHandler) submitSingle(c echo.Context, ctx context.Context, custNo string, item feedback.Item) error {
	sample, err := h.feedbackService.Record(ctx, custNo, item)
	if err != nil {
		return h.feedbackError(c, err)
	}

	return h.feedbackResponse(c, ctx, custNo, map[string]interface{}{
		"success": true,
		"sample":  sample,
	})
}

func (h *FeedbackHandler) submitBatch(c echo.Context, ctx context.Context, custNo string, items []feedback.Item) error {
	samples, err := h.feedbackService.RecordBatch(ctx, custNo, items)
	if err != nil {
		return h.feedbackError(c, err)
	}

	return h.feedbackResponse(c, ctx, custNo, map[string]interface{}{
		"success": true,
		"samples": samples,
	})
}

func (h *FeedbackHandler) feedbackResponse(c echo.Context, ctx context.Context, custNo string, body map[string]interface{}) error {
	all, err := h.feedbackService.Samples(ctx, custNo)
	if err != nil {
		logger.Error("Failed to load feedback samples", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	body["stats"] = feedback.Summarize(all)
	body["accuracyImprovement"] = feedback.AccuracyImprovement(all)
	return c.JSON(http.StatusOK, body)
}

func (h *FeedbackHandler) feedbackError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidFeedback), errors.Is(err, domain.ErrEmptyBatch):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	default:
		logger.Error("Failed to record feedback", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
}
