package tournamentdb

import (
	"database/sql/driver"
	"errors"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapErr(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantIs      error
		wantNotIs   error
		wantMessage string
	}{
		{
			name:        "bad connection",
			err:         driver.ErrBadConn,
			wantIs:      ErrStoreUnavailable,
			wantMessage: "tournamentdb.CountPlayers: store unavailable: driver: bad connection",
		},
		{
			name:   "dial failure",
			err:    &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			wantIs: ErrStoreUnavailable,
		},
		{
			name:      "foreign key violation from pgx",
			err:       &pgconn.PgError{Code: "23503", Message: "insert violates foreign key"},
			wantIs:    ErrForeignKeyViolation,
			wantNotIs: ErrStoreUnavailable,
		},
		{
			name:      "other pgx error",
			err:       &pgconn.PgError{Code: "42P01", Message: "relation does not exist"},
			wantNotIs: ErrForeignKeyViolation,
		},
		{
			name:        "plain error",
			err:         errors.New("boom"),
			wantNotIs:   ErrStoreUnavailable,
			wantMessage: "tournamentdb.CountPlayers: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapErr("CountPlayers", tt.err)
			assert.ErrorIs(t, got, tt.err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
			if tt.wantNotIs != nil {
				assert.NotErrorIs(t, got, tt.wantNotIs)
			}
			if tt.wantMessage != "" {
				assert.EqualError(t, got, tt.wantMessage)
			}
		})
	}
}
