package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"orgsite-backend/internal/shared/apperror"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")

	assert.NoError(t, Translate(nil))
	assert.ErrorIs(t, Translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)), apperror.ErrRecordNotFound)
	assert.Same(t, other, Translate(other))

	err := Translate(&pgconn.PgError{Code: "23505", ConstraintName: "policies_active_type_key"})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
	assert.Contains(t, err.Error(), "policies_active_type_key")

	assert.False(t, errors.Is(Translate(&pgconn.PgError{Code: "23503"}), apperror.ErrDuplicate))
}
