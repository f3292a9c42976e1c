package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingxi/domain"
	"lingxi/internal/repository/memory"
)

func newTestService() *Service {
	return NewService(memory.NewFeedbackRepository(), memory.NewCatalogRepository())
}

func TestRecordValidFeedback(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sample, err := svc.Record(ctx, "CUST1", Item{ProductID: "SAVE_002", Feedback: domain.FeedbackInterested})
	require.NoError(t, err)

	assert.NotEmpty(t, sample.ID)
	assert.Equal(t, "CUST1", sample.CustNo)
	assert.Equal(t, "SAVE_002", sample.ProductID)
	assert.Equal(t, "Fixed-Term Deposit", sample.ProductName)
	assert.Equal(t, 1, sample.Label)
	assert.False(t, sample.CreatedAt.IsZero())

	stored, err := svc.Samples(ctx, "CUST1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, sample.ID, stored[0].ID)
}

func TestRecordLabelDerivation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	interested, err := svc.Record(ctx, "CUST1", Item{ProductID: "SAVE_002", Feedback: domain.FeedbackInterested})
	require.NoError(t, err)
	assert.Equal(t, 1, interested.Label)

	notInterested, err := svc.Record(ctx, "CUST1", Item{ProductID: "WEALTH_002", Feedback: domain.FeedbackNotInterested})
	require.NoError(t, err)
	assert.Equal(t, 0, notInterested.Label)

	alreadyHave, err := svc.Record(ctx, "CUST1", Item{ProductID: "INSURE_001", Feedback: domain.FeedbackAlreadyHave})
	require.NoError(t, err)
	assert.Equal(t, 0, alreadyHave.Label)
}

func TestRecordRejectsUnknownProduct(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Record(ctx, "CUST1", Item{ProductID: "NOPE_001", Feedback: domain.FeedbackInterested})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	stored, err := svc.Samples(ctx, "CUST1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRecordRejectsInvalidInput(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Record(ctx, "CUST1", Item{ProductID: "", Feedback: domain.FeedbackInterested})
	assert.ErrorIs(t, err, domain.ErrInvalidFeedback)

	_, err = svc.Record(ctx, "CUST1", Item{ProductID: "SAVE_002", Feedback: "meh"})
	assert.ErrorIs(t, err, domain.ErrInvalidFeedback)
}

func TestRecordBatchPreservesOrder(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	samples, err := svc.RecordBatch(ctx, "CUST1", []Item{
		{ProductID: "SAVE_002", Feedback: domain.FeedbackInterested},
		{ProductID: "WEALTH_002", Feedback: domain.FeedbackNotInterested},
	})
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, []int{1, 0}, []int{samples[0].Label, samples[1].Label})

	stored, err := svc.Samples(ctx, "CUST1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "SAVE_002", stored[0].ProductID)
	assert.Equal(t, "WEALTH_002", stored[1].ProductID)
}

func TestRecordBatchIsAllOrNothing(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.RecordBatch(ctx, "CUST1", []Item{
		{ProductID: "SAVE_002", Feedback: domain.FeedbackInterested},
		{ProductID: "NOPE_001", Feedback: domain.FeedbackInterested},
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	// the valid first item must not have been stored
	stored, err := svc.Samples(ctx, "CUST1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRecordBatchRejectsEmpty(t *testing.T) {
	svc := newTestService()

	_, err := svc.RecordBatch(context.Background(), "CUST1", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestSummarize(t *testing.T) {
	stats := Summarize([]domain.FeedbackSample{
		{Label: 1},
		{Label: 1},
		{Label: 0},
		{Label: 0},
	})

	assert.Equal(t, 4, stats.TotalSamples)
	assert.Equal(t, 2, stats.PositiveSamples)
	assert.Equal(t, 2, stats.NegativeSamples)
	assert.Equal(t, "50.0%", stats.PositiveRatio)
	assert.Equal(t, "50.0%", stats.NegativeRatio)
	assert.NotEmpty(t, stats.Insights)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)

	assert.Equal(t, 0, stats.TotalSamples)
	assert.Equal(t, "0.0%", stats.PositiveRatio)
	assert.Equal(t, "no feedback collected yet", stats.Insights)
}

func TestAccuracyImprovementSaturates(t *testing.T) {
	assert.Equal(t, "+0.0%", AccuracyImprovement(nil))
	assert.Equal(t, "+1.0%", AccuracyImprovement(make([]domain.FeedbackSample, 2)))

	many := make([]domain.FeedbackSample, 100)
	assert.Equal(t, "+15.0%", AccuracyImprovement(many))
}
