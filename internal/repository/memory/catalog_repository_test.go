package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingxi/domain"
)

func TestCatalogFindAllReturnsCopy(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	first, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	first[0].Name = "mutated"

	second, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}

func TestCatalogFindByID(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	product, err := repo.FindByID(ctx, "SAVE_NEW_001")
	require.NoError(t, err)
	assert.Equal(t, "Jumbo Certificate of Deposit", product.Name)
	assert.Equal(t, 1, product.RiskLevel)

	_, err = repo.FindByID(ctx, "NOPE_001")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogLowestRiskOrderAndExclusion(t *testing.T) {
	repo := NewCatalogRepository()
	ctx := context.Background()

	safest, err := repo.LowestRisk(ctx, 3, nil)
	require.NoError(t, err)
	require.Len(t, safest, 3)

	// stable sort keeps catalog order among equal risk levels
	assert.Equal(t, "SAVE_NEW_001", safest[0].ID)
	assert.Equal(t, "SAVE_002", safest[1].ID)
	assert.Equal(t, "SAVE_003", safest[2].ID)

	excluded, err := repo.LowestRisk(ctx, 2, map[string]bool{"SAVE_NEW_001": true})
	require.NoError(t, err)
	require.Len(t, excluded, 2)
	assert.Equal(t, "SAVE_002", excluded[0].ID)
	assert.Equal(t, "SAVE_003", excluded[1].ID)
}
