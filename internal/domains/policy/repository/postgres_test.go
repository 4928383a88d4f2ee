package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgsite-backend/internal/domains/policy"
	"orgsite-backend/internal/shared/apperror"
	"orgsite-backend/internal/testutil"
)

func newPolicy(policyType string, active bool) *policy.Policy {
	return &policy.Policy{
		Type:     policyType,
		Title:    "Privacy policy",
		Content:  "We keep what you send us.",
		IsActive: active,
		Version:  policy.DefaultVersion,
	}
}

func TestPostgres_OneActivePolicyPerType(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRepository(testutil.Pool(t, "policies"))

	active, err := repo.Create(ctx, newPolicy(policy.TypePrivacy, true))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newPolicy(policy.TypePrivacy, true))
	assert.ErrorIs(t, err, apperror.ErrDuplicate)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	draft, err := repo.Create(ctx, newPolicy(policy.TypePrivacy, false))
	require.NoError(t, err)

	draft.IsActive = true
	_, err = repo.Update(ctx, draft)
	assert.ErrorIs(t, err, apperror.ErrDuplicate)

	current, err := repo.GetActiveByType(ctx, policy.TypePrivacy)
	require.NoError(t, err)
	assert.Equal(t, active.ID, current.ID)

	// another type is not affected
	_, err = repo.Create(ctx, newPolicy(policy.TypeCookie, true))
	assert.NoError(t, err)
}

func TestPostgres_ListMostRecentlyUpdatedFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewPostgresRepository(testutil.Pool(t, "policies"))

	privacy, err := repo.Create(ctx, newPolicy(policy.TypePrivacy, true))
	require.NoError(t, err)
	cookie, err := repo.Create(ctx, newPolicy(policy.TypeCookie, true))
	require.NoError(t, err)

	privacy.Version = "1.1"
	_, err = repo.Update(ctx, privacy)
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, privacy.ID, list[0].ID)
	assert.Equal(t, "1.1", list[0].Version)
	assert.Equal(t, cookie.ID, list[1].ID)
}
