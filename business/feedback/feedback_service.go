package feedback

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"lingxi/domain"
	"lingxi/pkg/logger"
	"lingxi/pkg/metrics"
)

type FeedbackRepository interface {
	Append(ctx context.Context, sample domain.FeedbackSample) error
	AppendAll(ctx context.Context, custNo string, batch []domain.FeedbackSample) error
	FindByCustomer(ctx context.Context, custNo string) ([]domain.FeedbackSample, error)
	CountAll(ctx context.Context) (int, error)
}

type ProductReader interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// Item is one feedback entry as submitted by the caller, before validation.
type Item struct {
	ProductID string `json:"productId"`
	Feedback  string `json:"feedback"`
}

type Service struct {
	repo    FeedbackRepository
	catalog ProductReader
}

func NewService(repo FeedbackRepository, catalog ProductReader) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
	}
}

func validFeedback(feedback string) bool {
	switch feedback {
	case domain.FeedbackInterested, domain.FeedbackNotInterested, domain.FeedbackAlreadyHave:
		return true
	}
	return false
}

// Record validates and stores a single feedback event. The product must exist
// in the catalog; unknown products are rejected, not silently recorded.
func (s *Service) Record(ctx context.Context, custNo string, item Item) (domain.FeedbackSample, error) {
	if err := ctx.Err(); err != nil {
		return domain.FeedbackSample{}, fmt.Errorf("context error: %w", err)
	}

	if item.ProductID == "" || !validFeedback(item.Feedback) {
		return domain.FeedbackSample{}, domain.ErrInvalidFeedback
	}

	product, err := s.catalog.FindByID(ctx, item.ProductID)
	if err != nil {
		return domain.FeedbackSample{}, err
	}

	sample := newSample(custNo, product, item.Feedback)
	if err := s.repo.Append(ctx, sample); err != nil {
		return domain.FeedbackSample{}, fmt.Errorf("store sample: %w", err)
	}

	metrics.FeedbackEventsTotal.WithLabelValues(strconv.Itoa(sample.Label)).Inc()
	logger.Debug("feedback recorded",
		"cust_no", custNo,
		"product_id", sample.ProductID,
		"feedback", sample.Feedback,
	)

	return sample, nil
}

// RecordBatch stores several feedback events for one customer atomically:
// every item, including product existence, is validated before anything is
// appended, so a bad entry leaves the store untouched.
func (s *Service) RecordBatch(ctx context.Context, custNo string, items []Item) ([]domain.FeedbackSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(items) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	batch := make([]domain.FeedbackSample, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" || !validFeedback(item.Feedback) {
			return nil, domain.ErrInvalidFeedback
		}

		product, err := s.catalog.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		batch = append(batch, newSample(custNo, product, item.Feedback))
	}

	if err := s.repo.AppendAll(ctx, custNo, batch); err != nil {
		return nil, fmt.Errorf("store batch: %w", err)
	}

	for _, sample := range batch {
		metrics.FeedbackEventsTotal.WithLabelValues(strconv.Itoa(sample.Label)).Inc()
	}
	logger.Debug("feedback batch recorded", "cust_no", custNo, "size", len(batch))

	return batch, nil
}

// Samples returns the customer's accumulated feedback in submission order.
func (s *Service) Samples(ctx context.Context, custNo string) ([]domain.FeedbackSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	return s.repo.FindByCustomer(ctx, custNo)
}

// Stats summarizes the customer's samples for the feedback response payload.
func (s *Service) Stats(ctx context.Context, custNo string) (domain.SampleStats, error) {
	samples, err := s.Samples(ctx, custNo)
	if err != nil {
		return domain.SampleStats{}, err
	}
	return Summarize(samples), nil
}

// Summarize computes the ratio breakdown over a sample slice.
func Summarize(samples []domain.FeedbackSample) domain.SampleStats {
	stats := domain.SampleStats{TotalSamples: len(samples)}
	for _, sample := range samples {
		if sample.Label == 1 {
			stats.PositiveSamples++
		} else {
			stats.NegativeSamples++
		}
	}

	if stats.TotalSamples > 0 {
		stats.PositiveRatio = ratio(stats.PositiveSamples, stats.TotalSamples)
		stats.NegativeRatio = ratio(stats.NegativeSamples, stats.TotalSamples)
	} else {
		stats.PositiveRatio = "0.0%"
		stats.NegativeRatio = "0.0%"
	}

	stats.Insights = insightsText(stats)
	return stats
}

// AccuracyImprovement reports the nominal model lift from the accumulated
// samples. It grows with sample count and saturates; there is no live model
// behind it.
func AccuracyImprovement(samples []domain.FeedbackSample) string {
	lift := 0.5 * float64(len(samples))
	if lift > 15 {
		lift = 15
	}
	return fmt.Sprintf("+%.1f%%", lift)
}

func ratio(part, total int) string {
	return fmt.Sprintf("%.1f%%", float64(part)/float64(total)*100)
}

func insightsText(stats domain.SampleStats) string {
	switch {
	case stats.TotalSamples == 0:
		return "no feedback collected yet"
	case stats.PositiveSamples > stats.NegativeSamples:
		return "the customer responds well to the recommended products"
	case stats.PositiveSamples < stats.NegativeSamples:
		return "the recommendations miss the customer's preferences; re-ranking will adjust"
	default:
		return "mixed feedback; more samples needed for a clear preference"
	}
}

func newSample(custNo string, product domain.Product, feedback string) domain.FeedbackSample {
	return domain.FeedbackSample{
		ID:          uuid.NewString(),
		CustNo:      custNo,
		ProductID:   product.ID,
		ProductName: product.Name,
		Feedback:    feedback,
		Label:       domain.FeedbackLabel(feedback),
		CreatedAt:   time.Now(),
	}
}
