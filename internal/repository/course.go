package repository

import (
	"context"

	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/sqlerr"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
	"github.com/shopspring/decimal"
)

const courseEntity = "course"

var courseTable = query.Table{
	Name: "courses",
	Columns: []string{
		"id", "title", "description", "category", "level", "duration",
		"price", "max_students", "schedule", "is_active", "created_at", "updated_at",
	},
	SearchColumns: []string{"title", "description"},
}

func scanCourse(row scanner) (model.Course, error) {
	var c model.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.Category, &c.Level, &c.Duration,
		&c.Price, &c.MaxStudents, &c.Schedule, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CourseRepository stores the course catalogue.
type CourseRepository struct {
	db DBTX
	t  *table[model.Course]
}

// NewCourseRepository returns a repository over db.
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		t:  &table[model.Course]{db: db, entity: courseEntity, def: courseTable, scan: scanCourse},
	}
}

func nullPrice(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*p)
}

// Create inserts a course. A course is active unless the input says
// otherwise; an omitted price is stored as NULL.
func (r *CourseRepository) Create(ctx context.Context, in model.CreateCourse) (*model.Course, error) {
	if err := validation.Check(&in); err != nil {
		return nil, sqlerr.HandleError(err, courseEntity, "create")
	}
	active := true
	if in.IsActive != nil {
		active = bool(*in.IsActive)
	}
	return r.t.insert(ctx, `
		INSERT INTO courses (
			title, description, category, level, duration,
			price, max_students, schedule, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+columns(courseTable),
		in.Title, in.Description, in.Category, in.Level, in.Duration,
		nullPrice(in.Price), in.MaxStudents, in.Schedule, active,
	)
}

// FindByID returns the course with id, or a not-found error.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*model.Course, error) {
	return r.t.findByID(ctx, id)
}

func courseConditions(f model.CourseFilter) *query.Conditions {
	c := query.Where()
	query.EqualIfPresent(c, "category", f.Category)
	query.EqualIfPresent(c, "level", f.Level)
	query.EqualIfPresent(c, "is_active", f.IsActive.Bool())
	return c.Search(f.Search, courseTable.SearchColumns...)
}

// List returns one page of courses matching f, newest first.
func (r *CourseRepository) List(ctx context.Context, page query.Page, f model.CourseFilter) ([]model.Course, error) {
	return r.t.list(ctx, "list", courseConditions(f), page)
}

func (r *CourseRepository) Count(ctx context.Context, f model.CourseFilter) (int64, error) {
	return r.t.count(ctx, "count", courseConditions(f))
}

// ListByCategory, ListByLevel and ListActive only return active courses.

func (r *CourseRepository) ListByCategory(ctx context.Context, category string, page query.Page) ([]model.Course, error) {
	return r.List(ctx, page, model.CourseFilter{Category: &category, IsActive: query.NewFlag(true)})
}

func (r *CourseRepository) ListByLevel(ctx context.Context, level model.Level, page query.Page) ([]model.Course, error) {
	return r.List(ctx, page, model.CourseFilter{Level: &level, IsActive: query.NewFlag(true)})
}

func (r *CourseRepository) ListActive(ctx context.Context, page query.Page) ([]model.Course, error) {
	return r.List(ctx, page, model.CourseFilter{IsActive: query.NewFlag(true)})
}

// Update writes the supplied fields and returns the number of rows
// changed. Zero means the course does not exist or nothing was supplied.
func (r *CourseRepository) Update(ctx context.Context, id int64, in model.UpdateCourse) (int64, error) {
	if err := validation.Check(&in); err != nil {
		return 0, sqlerr.HandleError(err, courseEntity, "update")
	}
	c := &query.Changes{}
	query.SetIfPresent(c, "title", in.Title)
	query.SetNullable(c, "description", in.Description)
	query.SetIfPresent(c, "category", in.Category)
	query.SetIfPresent(c, "level", in.Level)
	query.SetNullable(c, "duration", in.Duration)
	if in.Price != nil {
		c.Set("price", nullPrice(in.Price))
	}
	query.SetIfPresent(c, "max_students", in.MaxStudents)
	query.SetNullable(c, "schedule", in.Schedule)
	query.SetIfPresent(c, "is_active", in.IsActive.Bool())
	return r.t.update(ctx, "update", id, c)
}

// ToggleActive flips is_active in one statement.
func (r *CourseRepository) ToggleActive(ctx context.Context, id int64) (int64, error) {
	return r.t.exec(ctx, "toggle active",
		"UPDATE courses SET is_active = NOT is_active, updated_at = now() WHERE id = $1", id)
}

// Delete removes the course. A course that still has enrollments is a
// constraint violation.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}

// Stats counts courses overall, active ones, and per category and level.
func (r *CourseRepository) Stats(ctx context.Context) (*model.CourseStats, error) {
	const op = "stats"
	stats := &model.CourseStats{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM courses`).Scan(&stats.Total, &stats.Active)
	if err != nil {
		return nil, sqlerr.HandleError(err, courseEntity, op)
	}

	stats.ByCategory, err = groupCounts[string](ctx, r.db,
		"SELECT category, COUNT(*) FROM courses GROUP BY category")
	if err != nil {
		return nil, sqlerr.HandleError(err, courseEntity, op)
	}

	stats.ByLevel, err = groupCounts[model.Level](ctx, r.db,
		"SELECT level, COUNT(*) FROM courses GROUP BY level")
	if err != nil {
		return nil, sqlerr.HandleError(err, courseEntity, op)
	}
	return stats, nil
}
