package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsReportStopsAtFirstFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM students")).
		WillReturnRows(pgxmock.NewRows([]string{"count", "recent"}).AddRow(int64(0), int64(0)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) FROM students")).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT level, COUNT(*) FROM students")).
		WillReturnRows(pgxmock.NewRows([]string{"level", "count"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses")).
		WillReturnError(&pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"})

	svc := NewStatsService(repository.NewRepositories(mock, 4))
	_, err = svc.Report(context.Background())
	require.ErrorIs(t, err, errs.ErrUnavailable)
	assert.Contains(t, err.Error(), "course stats")
	assert.NoError(t, mock.ExpectationsWereMet())
}
