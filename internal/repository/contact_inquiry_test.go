package repository

import (
	"context"
	"testing"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inquiryRow(id int64, program *string, status model.InquiryStatus) *pgxmock.Rows {
	return pgxmock.NewRows(contactInquiryTable.Columns).AddRow(
		id, "Ravi", "ravi@example.com", noString(), program,
		"Do you run weekend batches?", status, day0, day0,
	)
}

func TestContactInquiryCreateDefaultsToNew(t *testing.T) {
	mock := newMock(t)
	repo := NewContactInquiryRepository(mock)

	program := model.ProgramAbacus
	mock.ExpectQuery(sqlText("INSERT INTO contact_inquiries")).
		WithArgs("Ravi", "ravi@example.com", noString(), &program, "Do you run weekend batches?", model.InquiryStatusNew).
		WillReturnRows(inquiryRow(1, &program, model.InquiryStatusNew))

	got, err := repo.Create(context.Background(), model.CreateContactInquiry{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Program: &program,
		Message: "Do you run weekend batches?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.InquiryStatusNew, got.Status)
	assert.Equal(t, model.ProgramAbacus, *got.Program)
}

func TestContactInquiryCreateRequiresMessage(t *testing.T) {
	mock := newMock(t)
	repo := NewContactInquiryRepository(mock)

	_, err := repo.Create(context.Background(), model.CreateContactInquiry{Name: "Ravi", Email: "ravi@example.com"})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestContactInquiryStatusHelpers(t *testing.T) {
	tests := []struct {
		name string
		call func(*ContactInquiryRepository) (int64, error)
		want model.InquiryStatus
	}{
		{
			name: "in progress",
			call: func(r *ContactInquiryRepository) (int64, error) { return r.MarkInProgress(context.Background(), 3) },
			want: model.InquiryStatusInProgress,
		},
		{
			name: "responded",
			call: func(r *ContactInquiryRepository) (int64, error) { return r.MarkResponded(context.Background(), 3) },
			want: model.InquiryStatusResponded,
		},
		{
			name: "closed",
			call: func(r *ContactInquiryRepository) (int64, error) { return r.Close(context.Background(), 3) },
			want: model.InquiryStatusClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewContactInquiryRepository(mock)

			mock.ExpectExec(sqlText("UPDATE contact_inquiries SET status = $1, updated_at = now() WHERE id = $2")).
				WithArgs(tt.want, int64(3)).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))

			n, err := tt.call(repo)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestContactInquiryUpdateStatusRejectsUnknown(t *testing.T) {
	mock := newMock(t)
	repo := NewContactInquiryRepository(mock)

	_, err := repo.UpdateStatus(context.Background(), 3, "archived")
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestContactInquiryListByProgramAndSearch(t *testing.T) {
	mock := newMock(t)
	repo := NewContactInquiryRepository(mock)
	ctx := context.Background()

	program := model.ProgramCompetition
	mock.ExpectQuery(sqlText("FROM contact_inquiries WHERE program = $1 ORDER BY created_at DESC, id DESC LIMIT 100 OFFSET 0")).
		WithArgs(program).
		WillReturnRows(inquiryRow(2, &program, model.InquiryStatusNew))
	mock.ExpectQuery(sqlText("FROM contact_inquiries WHERE status = $1 AND (name ILIKE $2 OR email ILIKE $3 OR message ILIKE $4)")).
		WithArgs(model.InquiryStatusNew, "%weekend%", "%weekend%", "%weekend%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	got, err := repo.ListByProgram(ctx, program, query.DefaultPage())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, program, *got[0].Program)

	status := model.InquiryStatusNew
	n, err := repo.Count(ctx, model.ContactInquiryFilter{Status: &status, Search: "weekend"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestContactInquiryStats(t *testing.T) {
	mock := newMock(t)
	repo := NewContactInquiryRepository(mock)

	mock.ExpectQuery(sqlText("FROM contact_inquiries")).
		WillReturnRows(pgxmock.NewRows([]string{"count", "recent"}).AddRow(int64(3), int64(2)))
	mock.ExpectQuery(sqlText("SELECT status, COUNT(*) FROM contact_inquiries GROUP BY status")).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow(model.InquiryStatusNew, int64(2)).
			AddRow(model.InquiryStatusClosed, int64(1)))
	mock.ExpectQuery(sqlText("SELECT COALESCE(program, ''), COUNT(*) FROM contact_inquiries GROUP BY 1")).
		WillReturnRows(pgxmock.NewRows([]string{"program", "count"}).
			AddRow("", int64(1)).
			AddRow(model.ProgramAbacus, int64(2)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Recent)
	assert.Equal(t, map[string]int64{"": 1, model.ProgramAbacus: 2}, stats.ByProgram)
	assert.Equal(t, map[model.InquiryStatus]int64{model.InquiryStatusNew: 2, model.InquiryStatusClosed: 1}, stats.ByStatus)
}
