package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/offering"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/testutil"
)

func TestPostgres_OfferingRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRepository(testutil.Pool(t, "services"))

	icon := "code"
	created, err := repo.Create(ctx, &offering.Offering{
		Title:       "Web development",
		Description: "Sites for student clubs",
		Sector:      "Technology",
		Icon:        &icon,
		Order:       2,
		IsActive:    true,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Web development", got.Title)
	assert.Equal(t, "Technology", got.Sector)
	require.NotNil(t, got.Icon)
	assert.Equal(t, "code", *got.Icon)
	assert.Equal(t, 2, got.Order)
	assert.True(t, got.IsActive)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
}

func TestPostgres_OfferingListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRepository(testutil.Pool(t, "services"))

	for _, order := range []int{3, 1, 2} {
		_, err := repo.Create(ctx, &offering.Offering{Title: "S", Description: "d", Sector: "x", Order: order, IsActive: true})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].Order, list[1].Order, list[2].Order})
}
