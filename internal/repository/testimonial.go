package repository

import (
	"context"

	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/sqlerr"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
)

const testimonialEntity = "testimonial"

// DefaultRandomLimit is the sample size used when RandomApproved is given
// a non-positive limit.
const DefaultRandomLimit = 3

var testimonialTable = query.Table{
	Name: "testimonials",
	Columns: []string{
		"id", "name", "email", "role", "message", "rating", "is_approved",
		"created_at", "updated_at",
	},
	SearchColumns: []string{"name", "message"},
}

func scanTestimonial(row scanner) (model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(
		&t.ID, &t.Name, &t.Email, &t.Role, &t.Message, &t.Rating, &t.IsApproved,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// TestimonialRepository stores testimonials and their approval state.
type TestimonialRepository struct {
	db DBTX
	t  *table[model.Testimonial]
}

// NewTestimonialRepository returns a repository over db.
func NewTestimonialRepository(db DBTX) *TestimonialRepository {
	return &TestimonialRepository{
		db: db,
		t: &table[model.Testimonial]{
			db:     db,
			entity: testimonialEntity,
			def:    testimonialTable,
			scan:   scanTestimonial,
		},
	}
}

// Create stores a testimonial. New testimonials wait for approval unless
// the input approves them.
func (r *TestimonialRepository) Create(ctx context.Context, in model.CreateTestimonial) (*model.Testimonial, error) {
	if err := validation.Check(&in); err != nil {
		return nil, sqlerr.HandleError(err, testimonialEntity, "create")
	}
	approved := false
	if in.IsApproved != nil {
		approved = bool(*in.IsApproved)
	}
	return r.t.insert(ctx, `
		INSERT INTO testimonials (name, email, role, message, rating, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+columns(testimonialTable),
		in.Name, in.Email, in.Role, in.Message, in.Rating, approved,
	)
}

// FindByID returns the testimonial with id regardless of approval.
func (r *TestimonialRepository) FindByID(ctx context.Context, id int64) (*model.Testimonial, error) {
	return r.t.findByID(ctx, id)
}

func testimonialConditions(f model.TestimonialFilter) *query.Conditions {
	c := query.Where()
	query.EqualIfPresent(c, "is_approved", f.IsApproved.Bool())
	query.EqualIfPresent(c, "rating", f.Rating)
	return c.Search(f.Search, testimonialTable.SearchColumns...)
}

func (r *TestimonialRepository) List(ctx context.Context, page query.Page, f model.TestimonialFilter) ([]model.Testimonial, error) {
	return r.t.list(ctx, "list", testimonialConditions(f), page)
}

func (r *TestimonialRepository) Count(ctx context.Context, f model.TestimonialFilter) (int64, error) {
	return r.t.count(ctx, "count", testimonialConditions(f))
}

// ListApproved returns the testimonials shown publicly.
func (r *TestimonialRepository) ListApproved(ctx context.Context, page query.Page) ([]model.Testimonial, error) {
	return r.List(ctx, page, model.TestimonialFilter{IsApproved: query.NewFlag(true)})
}

// ListPending returns testimonials that are not approved, which includes
// rejected ones.
func (r *TestimonialRepository) ListPending(ctx context.Context, page query.Page) ([]model.Testimonial, error) {
	return r.List(ctx, page, model.TestimonialFilter{IsApproved: query.NewFlag(false)})
}

// ListByRating returns approved testimonials with the given rating.
func (r *TestimonialRepository) ListByRating(ctx context.Context, rating int, page query.Page) ([]model.Testimonial, error) {
	return r.List(ctx, page, model.TestimonialFilter{IsApproved: query.NewFlag(true), Rating: &rating})
}

// RandomApproved returns up to limit approved testimonials in random order.
// Each call draws a fresh sample.
func (r *TestimonialRepository) RandomApproved(ctx context.Context, limit int) ([]model.Testimonial, error) {
	if limit <= 0 {
		limit = DefaultRandomLimit
	}
	return r.t.sample(ctx, "random approved", query.Where().Equal("is_approved", true), limit)
}

func (r *TestimonialRepository) Update(ctx context.Context, id int64, in model.UpdateTestimonial) (int64, error) {
	if err := validation.Check(&in); err != nil {
		return 0, sqlerr.HandleError(err, testimonialEntity, "update")
	}
	c := &query.Changes{}
	query.SetIfPresent(c, "name", in.Name)
	query.SetIfPresent(c, "email", in.Email)
	query.SetIfPresent(c, "role", in.Role)
	query.SetIfPresent(c, "message", in.Message)
	query.SetIfPresent(c, "rating", in.Rating)
	query.SetIfPresent(c, "is_approved", in.IsApproved.Bool())
	return r.t.update(ctx, "update", id, c)
}

// Approve marks the testimonial as publicly visible.
func (r *TestimonialRepository) Approve(ctx context.Context, id int64) (int64, error) {
	return r.Update(ctx, id, model.UpdateTestimonial{IsApproved: query.NewFlag(true)})
}

// Reject clears the approval flag. The row becomes indistinguishable from
// one that was never reviewed.
func (r *TestimonialRepository) Reject(ctx context.Context, id int64) (int64, error) {
	return r.Update(ctx, id, model.UpdateTestimonial{IsApproved: query.NewFlag(false)})
}

// Delete removes the testimonial.
func (r *TestimonialRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}

// Stats reports approval counts and the rating distribution of approved
// testimonials.
func (r *TestimonialRepository) Stats(ctx context.Context) (*model.TestimonialStats, error) {
	const op = "stats"
	stats := &model.TestimonialStats{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_approved),
		       COUNT(*) FILTER (WHERE NOT is_approved),
		       COALESCE(ROUND(AVG(rating) FILTER (WHERE is_approved), 1), 0)::float8
		FROM testimonials`).Scan(&stats.Total, &stats.Approved, &stats.Pending, &stats.AverageRating)
	if err != nil {
		return nil, sqlerr.HandleError(err, testimonialEntity, op)
	}

	stats.ByRating, err = groupCounts[int](ctx, r.db,
		"SELECT rating, COUNT(*) FROM testimonials WHERE is_approved GROUP BY rating")
	if err != nil {
		return nil, sqlerr.HandleError(err, testimonialEntity, op)
	}
	return stats, nil
}
