package tournamentdb

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Sentinel errors for the repository layer.
var (
	// ErrStoreUnavailable indicates the database could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrForeignKeyViolation indicates a row referenced a player or match
	// that does not exist.
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

const foreignKeyViolationCode = "23503"

// wrapErr prefixes err with the repository operation and tags connectivity
// and foreign key failures so callers can match them with errors.Is.
func wrapErr(op string, err error) error {
	switch {
	case isConnectionError(err):
		return fmt.Errorf("tournamentdb.%s: %w: %w", op, ErrStoreUnavailable, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("tournamentdb.%s: %w: %w", op, ErrForeignKeyViolation, err)
	default:
		return fmt.Errorf("tournamentdb.%s: %w", op, err)
	}
}

func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// isForeignKeyViolation understands both Postgres drivers the store can run on.
func isForeignKeyViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == foreignKeyViolationCode
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == foreignKeyViolationCode
	}
	return false
}
