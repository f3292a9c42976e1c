package memory

import (
	"context"
	"fmt"
	"lingxi/domain"
	"sync"
)

// FeedbackRepository is the process-wide sample store. Echo runs handlers on
// parallel goroutines, so a single RWMutex guards the whole map; append order
// within one customer's slice is thereby preserved.
type FeedbackRepository struct {
	mu      sync.RWMutex
	samples map[string][]domain.FeedbackSample
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{
		samples: make(map[string][]domain.FeedbackSample),
	}
}

func (r *FeedbackRepository) Append(ctx context.Context, sample domain.FeedbackSample) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[sample.CustNo] = append(r.samples[sample.CustNo], sample)
	return nil
}

// AppendAll appends a batch for one customer under a single lock acquisition,
// so the batch lands contiguously and in order.
func (r *FeedbackRepository) AppendAll(ctx context.Context, custNo string, batch []domain.FeedbackSample) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[custNo] = append(r.samples[custNo], batch...)
	return nil
}

// FindByCustomer returns the customer's samples in append order. The slice is
// a copy; callers may not mutate stored samples.
func (r *FeedbackRepository) FindByCustomer(ctx context.Context, custNo string) ([]domain.FeedbackSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.samples[custNo]
	out := make([]domain.FeedbackSample, len(stored))
	copy(out, stored)
	return out, nil
}

func (r *FeedbackRepository) CountAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, list := range r.samples {
		total += len(list)
	}
	return total, nil
}
