package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	day1 = day0.Add(24 * time.Hour)
	day2 = day1.Add(24 * time.Hour)
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

// sqlText turns a literal statement fragment into a query matcher pattern.
func sqlText(s string) string {
	return regexp.QuoteMeta(s)
}

func strp(s string) *string { return &s }

func intp(n int) *int { return &n }

func noString() *string { return nil }
