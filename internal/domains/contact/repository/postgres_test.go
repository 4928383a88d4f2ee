package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/contact"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/testutil"
)

func TestPostgres_ListOrderAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRepository(testutil.Pool(t, "contacts"))

	for _, order := range []int{3, 1, 2} {
		_, err := repo.Create(ctx, &contact.Contact{Type: contact.TypePhone, Value: "0123", Order: order, IsActive: true})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].Order, list[1].Order, list[2].Order})

	require.NoError(t, repo.Delete(ctx, list[0].ID))
	_, err = repo.GetByID(ctx, list[0].ID)
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), apperror.ErrRecordNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
