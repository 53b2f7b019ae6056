package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// wrapDBError adds the SQLSTATE to driver errors so logs show which
// constraint or class of failure fired.
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s (sqlstate %s %s): %w", msg, pqErr.Code, pqErr.Code.Name(), err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}

func nullStringToString(value sql.NullString) string {
	if !value.Valid {
		return ""
	}
	return value.String
}
