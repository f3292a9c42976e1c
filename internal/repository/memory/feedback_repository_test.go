package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingxi/domain"
)

func TestFeedbackAppendPreservesOrder(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.Append(ctx, domain.FeedbackSample{
			ID:     fmt.Sprintf("s-%d", i),
			CustNo: "CUST1",
		})
		require.NoError(t, err)
	}

	samples, err := repo.FindByCustomer(ctx, "CUST1")
	require.NoError(t, err)
	require.Len(t, samples, 5)
	for i, sample := range samples {
		assert.Equal(t, fmt.Sprintf("s-%d", i), sample.ID)
	}
}

func TestFeedbackAppendAllLandsContiguously(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	batch := []domain.FeedbackSample{
		{ID: "b-0", CustNo: "CUST1"},
		{ID: "b-1", CustNo: "CUST1"},
		{ID: "b-2", CustNo: "CUST1"},
	}
	require.NoError(t, repo.AppendAll(ctx, "CUST1", batch))

	samples, err := repo.FindByCustomer(ctx, "CUST1")
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, "b-0", samples[0].ID)
	assert.Equal(t, "b-2", samples[2].ID)
}

func TestFeedbackFindByCustomerReturnsCopy(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, domain.FeedbackSample{ID: "s-0", CustNo: "CUST1"}))

	first, err := repo.FindByCustomer(ctx, "CUST1")
	require.NoError(t, err)
	first[0].ID = "mutated"

	second, err := repo.FindByCustomer(ctx, "CUST1")
	require.NoError(t, err)
	assert.Equal(t, "s-0", second[0].ID)
}

func TestFeedbackConcurrentAppends(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			custNo := fmt.Sprintf("CUST%d", i%5)
			_ = repo.Append(ctx, domain.FeedbackSample{
				ID:     fmt.Sprintf("s-%d", i),
				CustNo: custNo,
			})
		}(i)
	}
	wg.Wait()

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, total)
}

func TestFeedbackUnknownCustomerIsEmpty(t *testing.T) {
	repo := NewFeedbackRepository()

	samples, err := repo.FindByCustomer(context.Background(), "NOBODY")
	require.NoError(t, err)
	assert.Empty(t, samples)
}
