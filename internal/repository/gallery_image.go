package repository

import (
	"context"

	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/sqlerr"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
	"github.com/jackc/pgx/v5"
)

const galleryImageEntity = "gallery image"

// DefaultRecentLimit is the number of images Recent returns when given a
// non-positive limit.
const DefaultRecentLimit = 10

var galleryImageTable = query.Table{
	Name: "gallery_images",
	Columns: []string{
		"id", "filename", "original_name", "mime_type", "size", "path",
		"category", "description", "is_active", "created_at", "updated_at",
	},
	SearchColumns: []string{"original_name", "description"},
}

func scanGalleryImage(row scanner) (model.GalleryImage, error) {
	var g model.GalleryImage
	err := row.Scan(
		&g.ID, &g.Filename, &g.OriginalName, &g.MimeType, &g.Size, &g.Path,
		&g.Category, &g.Description, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

// GalleryImageRepository stores gallery image metadata. It never touches
// the files themselves.
type GalleryImageRepository struct {
	db DBTX
	t  *table[model.GalleryImage]
}

// NewGalleryImageRepository returns a repository over db.
func NewGalleryImageRepository(db DBTX) *GalleryImageRepository {
	return &GalleryImageRepository{
		db: db,
		t: &table[model.GalleryImage]{
			db:     db,
			entity: galleryImageEntity,
			def:    galleryImageTable,
			scan:   scanGalleryImage,
		},
	}
}

// Create stores the metadata of one uploaded file.
func (r *GalleryImageRepository) Create(ctx context.Context, in model.CreateGalleryImage) (*model.GalleryImage, error) {
	if err := validation.Check(&in); err != nil {
		return nil, sqlerr.HandleError(err, galleryImageEntity, "create")
	}
	active := true
	if in.IsActive != nil {
		active = bool(*in.IsActive)
	}
	return r.t.insert(ctx, `
		INSERT INTO gallery_images (
			filename, original_name, mime_type, size, path,
			category, description, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+columns(galleryImageTable),
		in.Filename, in.OriginalName, in.MimeType, in.Size, in.Path,
		in.Category, in.Description, active,
	)
}

// CreateMany inserts each image on its own. A failure is recorded in that
// item's result and does not undo the items stored before it.
func (r *GalleryImageRepository) CreateMany(ctx context.Context, in []model.CreateGalleryImage) []model.GalleryImageResult {
	results := make([]model.GalleryImageResult, len(in))
	for i := range in {
		img, err := r.Create(ctx, in[i])
		results[i] = model.GalleryImageResult{Image: img, Err: err}
	}
	return results
}

// FindByID returns the image with id, active or not.
func (r *GalleryImageRepository) FindByID(ctx context.Context, id int64) (*model.GalleryImage, error) {
	return r.t.findByID(ctx, id)
}

func galleryImageConditions(f model.GalleryImageFilter) *query.Conditions {
	c := query.Where()
	query.EqualIfPresent(c, "category", f.Category)
	query.EqualIfPresent(c, "is_active", f.IsActive.Bool())
	return c.Search(f.Search, galleryImageTable.SearchColumns...)
}

func (r *GalleryImageRepository) List(ctx context.Context, page query.Page, f model.GalleryImageFilter) ([]model.GalleryImage, error) {
	return r.t.list(ctx, "list", galleryImageConditions(f), page)
}

func (r *GalleryImageRepository) Count(ctx context.Context, f model.GalleryImageFilter) (int64, error) {
	return r.t.count(ctx, "count", galleryImageConditions(f))
}

func (r *GalleryImageRepository) ListByCategory(ctx context.Context, category string, page query.Page) ([]model.GalleryImage, error) {
	return r.List(ctx, page, model.GalleryImageFilter{Category: &category, IsActive: query.NewFlag(true)})
}

func (r *GalleryImageRepository) ListActive(ctx context.Context, page query.Page) ([]model.GalleryImage, error) {
	return r.List(ctx, page, model.GalleryImageFilter{IsActive: query.NewFlag(true)})
}

// Search matches term against the original file name and description of
// active images.
func (r *GalleryImageRepository) Search(ctx context.Context, term string, page query.Page) ([]model.GalleryImage, error) {
	return r.List(ctx, page, model.GalleryImageFilter{IsActive: query.NewFlag(true), Search: term})
}

// Recent returns the newest active images, DefaultRecentLimit when limit
// is not positive.
func (r *GalleryImageRepository) Recent(ctx context.Context, limit int) ([]model.GalleryImage, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return r.ListActive(ctx, query.Page{Limit: limit})
}

// Categories lists the categories of active images with their counts,
// ordered by category. Uncategorized images are reported with a nil
// category.
func (r *GalleryImageRepository) Categories(ctx context.Context) ([]model.GalleryCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*)
		FROM gallery_images
		WHERE is_active
		GROUP BY category
		ORDER BY category`)
	if err != nil {
		return nil, sqlerr.HandleError(err, galleryImageEntity, "categories")
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.GalleryCategory, error) {
		var c model.GalleryCategory
		err := row.Scan(&c.Category, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, sqlerr.HandleError(err, galleryImageEntity, "categories")
	}
	return out, nil
}

// Update writes the supplied metadata fields. File fields are fixed once
// uploaded.
func (r *GalleryImageRepository) Update(ctx context.Context, id int64, in model.UpdateGalleryImage) (int64, error) {
	if err := validation.Check(&in); err != nil {
		return 0, sqlerr.HandleError(err, galleryImageEntity, "update")
	}
	c := &query.Changes{}
	query.SetIfPresent(c, "original_name", in.OriginalName)
	query.SetNullable(c, "category", in.Category)
	query.SetNullable(c, "description", in.Description)
	query.SetIfPresent(c, "is_active", in.IsActive.Bool())
	return r.t.update(ctx, "update", id, c)
}

// ToggleActive flips is_active in one statement.
func (r *GalleryImageRepository) ToggleActive(ctx context.Context, id int64) (int64, error) {
	return r.t.exec(ctx, "toggle active",
		"UPDATE gallery_images SET is_active = NOT is_active, updated_at = now() WHERE id = $1", id)
}

// Delete removes the metadata row only. Use Remove when the caller also
// needs the file path.
func (r *GalleryImageRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}

// Remove deletes the row and returns what was stored, so the caller can
// unlink the file at Path. A missing row is a not-found error.
func (r *GalleryImageRepository) Remove(ctx context.Context, id int64) (*model.GalleryImage, error) {
	img, err := queryOne(ctx, r.db, scanGalleryImage,
		"DELETE FROM gallery_images WHERE id = $1 RETURNING "+columns(galleryImageTable), id)
	if err != nil {
		return nil, sqlerr.HandleError(err, galleryImageEntity, "remove")
	}
	return img, nil
}

// Stats reports counts, categories and the total stored size.
func (r *GalleryImageRepository) Stats(ctx context.Context) (*model.GalleryImageStats, error) {
	const op = "stats"
	stats := &model.GalleryImageStats{}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_active),
		       COALESCE(SUM(size), 0)::bigint
		FROM gallery_images`).Scan(&stats.Total, &stats.Active, &stats.TotalSize)
	if err != nil {
		return nil, sqlerr.HandleError(err, galleryImageEntity, op)
	}

	stats.ByCategory, err = groupCounts[string](ctx, r.db,
		"SELECT COALESCE(category, ''), COUNT(*) FROM gallery_images GROUP BY 1")
	if err != nil {
		return nil, sqlerr.HandleError(err, galleryImageEntity, op)
	}
	return stats, nil
}
