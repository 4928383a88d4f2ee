package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/newsletter"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/testutil"
)

func TestPostgres_UniqueEmailAndDeactivate(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRepository(testutil.Pool(t, "newsletter_subscribers"))

	created, err := repo.Create(ctx, &newsletter.Subscriber{Email: "a@b.io", IsActive: true})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	_, err = repo.Create(ctx, &newsletter.Subscriber{Email: "a@b.io", IsActive: true})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	sub, err := repo.Deactivate(ctx, "a@b.io")
	require.NoError(t, err)
	assert.False(t, sub.IsActive)

	_, err = repo.Deactivate(ctx, "ghost@b.io")
	assert.ErrorIs(t, err, apperror.ErrRecordNotFound)
}
