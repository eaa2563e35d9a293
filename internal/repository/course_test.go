package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courseSelect = "SELECT id, title, description, category, level, duration, price, max_students, schedule, is_active, created_at, updated_at FROM courses"

// courseRow builds one course row. price is nil or the NUMERIC text the
// driver hands to decimal.NullDecimal.Scan.
func courseRow(id int64, title string, price any, active bool) *pgxmock.Rows {
	return pgxmock.NewRows(courseTable.Columns).AddRow(
		id, title, noString(), model.ProgramAbacus, model.LevelBeginner, noString(),
		price, (*int)(nil), noString(), active, day0, day0,
	)
}

// Flags arriving as strings, numbers or booleans are normalized before
// they reach the insert, and read back as plain booleans.
func TestCourseCreateNormalizesActiveFlag(t *testing.T) {
	inputs := []string{`"false"`, `"0"`, `0`, `false`, `"FALSE"`}

	for _, raw := range inputs {
		mock := newMock(t)
		repo := NewCourseRepository(mock)

		var in model.CreateCourse
		body := `{"title":"Abacus I","category":"abacus","level":"beginner","is_active":` + raw + `}`
		require.NoError(t, json.Unmarshal([]byte(body), &in), raw)

		mock.ExpectQuery(sqlText("INSERT INTO courses")).
			WithArgs("Abacus I", noString(), model.ProgramAbacus, model.LevelBeginner, noString(),
				decimal.NullDecimal{}, (*int)(nil), noString(), false).
			WillReturnRows(courseRow(1, "Abacus I", nil, false))

		c, err := repo.Create(context.Background(), in)
		require.NoError(t, err, "input %v", raw)
		assert.False(t, c.IsActive)
		assert.False(t, c.Price.Valid)
	}
}

func TestCourseCreateDefaultsActive(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	price := decimal.RequireFromString("2499.50")
	mock.ExpectQuery(sqlText("INSERT INTO courses")).
		WithArgs("Abacus I", noString(), model.ProgramAbacus, model.LevelBeginner, noString(),
			decimal.NewNullDecimal(price), intp(20), noString(), true).
		WillReturnRows(courseRow(1, "Abacus I", "2499.50", true))

	c, err := repo.Create(context.Background(), model.CreateCourse{
		Title:       "Abacus I",
		Category:    model.ProgramAbacus,
		Level:       model.LevelBeginner,
		Price:       &price,
		MaxStudents: intp(20),
	})
	require.NoError(t, err)
	assert.True(t, c.IsActive)
	assert.True(t, c.Price.Decimal.Equal(price))
}

func TestCourseListByCategoryIsActiveOnly(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(sqlText(courseSelect+" WHERE category = $1 AND is_active = $2 ORDER BY created_at DESC, id DESC LIMIT 100 OFFSET 0")).
		WithArgs(model.ProgramAbacus, true).
		WillReturnRows(courseRow(4, "Abacus II", nil, true))

	got, err := repo.ListByCategory(context.Background(), model.ProgramAbacus, query.DefaultPage())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsActive)
}

func TestCourseListWithoutFilters(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(sqlText(courseSelect + " ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 30")).
		WillReturnRows(pgxmock.NewRows(courseTable.Columns))

	got, err := repo.List(context.Background(), query.Page{Limit: 10, Offset: 30}, model.CourseFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCourseUpdateExplicitFalse(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectExec(sqlText("UPDATE courses SET is_active = $1, updated_at = now() WHERE id = $2")).
		WithArgs(false, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := repo.Update(context.Background(), 2, model.UpdateCourse{IsActive: query.NewFlag(false)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCourseUpdateRejectsBadLevel(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	level := model.Level("expert")
	_, err := repo.Update(context.Background(), 2, model.UpdateCourse{Level: &level})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestCourseToggleActive(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectExec(sqlText("UPDATE courses SET is_active = NOT is_active, updated_at = now() WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := repo.ToggleActive(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCourseStats(t *testing.T) {
	mock := newMock(t)
	repo := NewCourseRepository(mock)

	mock.ExpectQuery(sqlText("FROM courses")).
		WillReturnRows(pgxmock.NewRows([]string{"count", "active"}).AddRow(int64(4), int64(3)))
	mock.ExpectQuery(sqlText("SELECT category, COUNT(*) FROM courses GROUP BY category")).
		WillReturnRows(pgxmock.NewRows([]string{"category", "count"}).
			AddRow(model.ProgramAbacus, int64(3)).
			AddRow(model.ProgramCompetition, int64(1)))
	mock.ExpectQuery(sqlText("SELECT level, COUNT(*) FROM courses GROUP BY level")).
		WillReturnRows(pgxmock.NewRows([]string{"level", "count"}).
			AddRow(model.LevelBeginner, int64(4)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.CourseStats{
		Total:      4,
		Active:     3,
		ByCategory: map[string]int64{model.ProgramAbacus: 3, model.ProgramCompetition: 1},
		ByLevel:    map[model.Level]int64{model.LevelBeginner: 4},
	}, stats)
}
