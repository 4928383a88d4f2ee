package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"orgsite-backend/internal/shared/apperror"
)

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint violation and
// returns the violated constraint name.
func IsUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Translate chuyển lỗi của driver sang sentinel của repository:
// pgx.ErrNoRows -> apperror.ErrRecordNotFound, 23505 -> apperror.ErrDuplicate
// (giữ tên constraint trong message). Lỗi khác trả về nguyên vẹn.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if IsNoRows(err) {
		return apperror.ErrRecordNotFound
	}
	if constraint, ok := IsUniqueViolation(err); ok {
		return fmt.Errorf("%w: %s", apperror.ErrDuplicate, constraint)
	}
	return err
}
