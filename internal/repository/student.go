package repository

import (
	"context"

	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/sqlerr"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
)

const studentEntity = "student"

var studentTable = query.Table{
	Name: "students",
	Columns: []string{
		"id", "user_id", "name", "age", "email", "phone", "level",
		"parent_name", "parent_phone", "address", "enrollment_date",
		"status", "notes", "created_at", "updated_at",
	},
	SearchColumns: []string{"name", "email", "phone"},
	RecencyColumn: "enrollment_date",
}

func scanStudent(row scanner) (model.Student, error) {
	var s model.Student
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Age, &s.Email, &s.Phone, &s.Level,
		&s.ParentName, &s.ParentPhone, &s.Address, &s.EnrollmentDate,
		&s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// StudentRepository stores student enrollments.
type StudentRepository struct {
	db DBTX
	t  *table[model.Student]
}

// NewStudentRepository returns a repository over db, which may be a pool
// or a transaction.
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		t:  &table[model.Student]{db: db, entity: studentEntity, def: studentTable, scan: scanStudent},
	}
}

// Create inserts a student. A second student with the same email is
// rejected by the students_email_key index with a constraint error.
func (r *StudentRepository) Create(ctx context.Context, in model.CreateStudent) (*model.Student, error) {
	if err := validation.Check(&in); err != nil {
		return nil, sqlerr.HandleError(err, studentEntity, "create")
	}
	return r.t.insert(ctx, `
		INSERT INTO students (
			user_id, name, age, email, phone, level,
			parent_name, parent_phone, address, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+columns(studentTable),
		in.UserID, in.Name, in.Age, in.Email, in.Phone, in.Level,
		in.ParentName, in.ParentPhone, in.Address, in.StatusOrDefault(), in.Notes,
	)
}

// FindByID returns the student with id, or a not-found error.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*model.Student, error) {
	return r.t.findByID(ctx, id)
}

// FindByEmail looks a student up by exact email.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	item, err := queryOne(ctx, r.db, scanStudent,
		"SELECT "+columns(studentTable)+" FROM students WHERE email = $1", email)
	if err != nil {
		return nil, sqlerr.HandleError(err, studentEntity, "find by email")
	}
	return item, nil
}

func studentConditions(f model.StudentFilter) *query.Conditions {
	c := query.Where()
	query.EqualIfPresent(c, "status", f.Status)
	query.EqualIfPresent(c, "level", f.Level)
	return c.Search(f.Search, studentTable.SearchColumns...)
}

// List returns one page of students, most recently enrolled first.
func (r *StudentRepository) List(ctx context.Context, page query.Page, f model.StudentFilter) ([]model.Student, error) {
	return r.t.list(ctx, "list", studentConditions(f), page)
}

// Count returns how many students match f, ignoring pagination.
func (r *StudentRepository) Count(ctx context.Context, f model.StudentFilter) (int64, error) {
	return r.t.count(ctx, "count", studentConditions(f))
}

func (r *StudentRepository) ListByLevel(ctx context.Context, level model.Level, page query.Page) ([]model.Student, error) {
	return r.List(ctx, page, model.StudentFilter{Level: &level})
}

func (r *StudentRepository) ListByStatus(ctx context.Context, status model.StudentStatus, page query.Page) ([]model.Student, error) {
	return r.List(ctx, page, model.StudentFilter{Status: &status})
}

// Update applies the supplied fields and returns the number of rows
// changed; 0 means no such student or nothing to change.
func (r *StudentRepository) Update(ctx context.Context, id int64, in model.UpdateStudent) (int64, error) {
	if err := validation.Check(&in); err != nil {
		return 0, sqlerr.HandleError(err, studentEntity, "update")
	}
	c := &query.Changes{}
	query.SetNullable(c, "user_id", in.UserID)
	query.SetIfPresent(c, "name", in.Name)
	query.SetIfPresent(c, "age", in.Age)
	query.SetIfPresent(c, "email", in.Email)
	query.SetIfPresent(c, "phone", in.Phone)
	query.SetIfPresent(c, "level", in.Level)
	query.SetNullable(c, "parent_name", in.ParentName)
	query.SetNullable(c, "parent_phone", in.ParentPhone)
	query.SetNullable(c, "address", in.Address)
	query.SetIfPresent(c, "status", in.Status)
	query.SetNullable(c, "notes", in.Notes)
	return r.t.update(ctx, "update", id, c)
}

// UpdateStatus sets the status from any state.
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status model.StudentStatus) (int64, error) {
	return r.Update(ctx, id, model.UpdateStudent{Status: &status})
}

// Delete removes the student and reports how many rows went away.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}

// Stats reports totals by status and level, and enrollments in the last
// seven days.
func (r *StudentRepository) Stats(ctx context.Context) (*model.StudentStats, error) {
	const op = "stats"
	stats := &model.StudentStats{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE enrollment_date > now() - interval '`+recentWindow+`')
		FROM students`).Scan(&stats.Total, &stats.Recent)
	if err != nil {
		return nil, sqlerr.HandleError(err, studentEntity, op)
	}

	stats.ByStatus, err = groupCounts[model.StudentStatus](ctx, r.db,
		"SELECT status, COUNT(*) FROM students GROUP BY status")
	if err != nil {
		return nil, sqlerr.HandleError(err, studentEntity, op)
	}

	stats.ByLevel, err = groupCounts[model.Level](ctx, r.db,
		"SELECT level, COUNT(*) FROM students GROUP BY level")
	if err != nil {
		return nil, sqlerr.HandleError(err, studentEntity, op)
	}
	return stats, nil
}
