package postgres

import (
	"database/sql"
	"errors"
)

// isNotFound reports whether err is the driver's empty-result error, the
// shape repositories translate into a (zero, false, nil) return.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
