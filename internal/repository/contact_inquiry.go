package repository

import (
	"context"

	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/sqlerr"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
)

const contactInquiryEntity = "contact inquiry"

var contactInquiryTable = query.Table{
	Name: "contact_inquiries",
	Columns: []string{
		"id", "name", "email", "phone", "program", "message", "status",
		"created_at", "updated_at",
	},
	SearchColumns: []string{"name", "email", "message"},
}

func scanContactInquiry(row scanner) (model.ContactInquiry, error) {
	var c model.ContactInquiry
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Program, &c.Message, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// ContactInquiryRepository stores messages sent through the contact form.
type ContactInquiryRepository struct {
	db DBTX
	t  *table[model.ContactInquiry]
}

// NewContactInquiryRepository returns a repository over db.
func NewContactInquiryRepository(db DBTX) *ContactInquiryRepository {
	return &ContactInquiryRepository{
		db: db,
		t: &table[model.ContactInquiry]{
			db:     db,
			entity: contactInquiryEntity,
			def:    contactInquiryTable,
			scan:   scanContactInquiry,
		},
	}
}

// Create stores an inquiry, with status new unless one is given.
func (r *ContactInquiryRepository) Create(ctx context.Context, in model.CreateContactInquiry) (*model.ContactInquiry, error) {
	if err := validation.Check(&in); err != nil {
		return nil, sqlerr.HandleError(err, contactInquiryEntity, "create")
	}
	return r.t.insert(ctx, `
		INSERT INTO contact_inquiries (name, email, phone, program, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+columns(contactInquiryTable),
		in.Name, in.Email, in.Phone, in.Program, in.Message, in.StatusOrDefault(),
	)
}

func (r *ContactInquiryRepository) FindByID(ctx context.Context, id int64) (*model.ContactInquiry, error) {
	return r.t.findByID(ctx, id)
}

func contactInquiryConditions(f model.ContactInquiryFilter) *query.Conditions {
	c := query.Where()
	query.EqualIfPresent(c, "status", f.Status)
	query.EqualIfPresent(c, "program", f.Program)
	return c.Search(f.Search, contactInquiryTable.SearchColumns...)
}

func (r *ContactInquiryRepository) List(ctx context.Context, page query.Page, f model.ContactInquiryFilter) ([]model.ContactInquiry, error) {
	return r.t.list(ctx, "list", contactInquiryConditions(f), page)
}

func (r *ContactInquiryRepository) Count(ctx context.Context, f model.ContactInquiryFilter) (int64, error) {
	return r.t.count(ctx, "count", contactInquiryConditions(f))
}

func (r *ContactInquiryRepository) ListByStatus(ctx context.Context, status model.InquiryStatus, page query.Page) ([]model.ContactInquiry, error) {
	return r.List(ctx, page, model.ContactInquiryFilter{Status: &status})
}

func (r *ContactInquiryRepository) ListByProgram(ctx context.Context, program string, page query.Page) ([]model.ContactInquiry, error) {
	return r.List(ctx, page, model.ContactInquiryFilter{Program: &program})
}

// Update writes the supplied fields. Any status may follow any other.
func (r *ContactInquiryRepository) Update(ctx context.Context, id int64, in model.UpdateContactInquiry) (int64, error) {
	if err := validation.Check(&in); err != nil {
		return 0, sqlerr.HandleError(err, contactInquiryEntity, "update")
	}
	c := &query.Changes{}
	query.SetIfPresent(c, "name", in.Name)
	query.SetIfPresent(c, "email", in.Email)
	query.SetNullable(c, "phone", in.Phone)
	query.SetIfPresent(c, "program", in.Program)
	query.SetIfPresent(c, "message", in.Message)
	query.SetIfPresent(c, "status", in.Status)
	return r.t.update(ctx, "update", id, c)
}

// UpdateStatus sets the status from any state.
func (r *ContactInquiryRepository) UpdateStatus(ctx context.Context, id int64, status model.InquiryStatus) (int64, error) {
	return r.Update(ctx, id, model.UpdateContactInquiry{Status: &status})
}

func (r *ContactInquiryRepository) MarkInProgress(ctx context.Context, id int64) (int64, error) {
	return r.UpdateStatus(ctx, id, model.InquiryStatusInProgress)
}

func (r *ContactInquiryRepository) MarkResponded(ctx context.Context, id int64) (int64, error) {
	return r.UpdateStatus(ctx, id, model.InquiryStatusResponded)
}

func (r *ContactInquiryRepository) Close(ctx context.Context, id int64) (int64, error) {
	return r.UpdateStatus(ctx, id, model.InquiryStatusClosed)
}

func (r *ContactInquiryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}

// Stats groups inquiries by status and program. Inquiries without a
// program are counted under "".
func (r *ContactInquiryRepository) Stats(ctx context.Context) (*model.ContactInquiryStats, error) {
	const op = "stats"
	stats := &model.ContactInquiryStats{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at > now() - interval '`+recentWindow+`')
		FROM contact_inquiries`).Scan(&stats.Total, &stats.Recent)
	if err != nil {
		return nil, sqlerr.HandleError(err, contactInquiryEntity, op)
	}

	stats.ByStatus, err = groupCounts[model.InquiryStatus](ctx, r.db,
		"SELECT status, COUNT(*) FROM contact_inquiries GROUP BY status")
	if err != nil {
		return nil, sqlerr.HandleError(err, contactInquiryEntity, op)
	}

	stats.ByProgram, err = groupCounts[string](ctx, r.db,
		"SELECT COALESCE(program, ''), COUNT(*) FROM contact_inquiries GROUP BY 1")
	if err != nil {
		return nil, sqlerr.HandleError(err, contactInquiryEntity, op)
	}
	return stats, nil
}
