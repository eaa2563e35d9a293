package repository

import (
	"context"
	"testing"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gallerySelect = "SELECT id, filename, original_name, mime_type, size, path, category, description, is_active, created_at, updated_at FROM gallery_images"

func galleryRows() *pgxmock.Rows {
	return pgxmock.NewRows(galleryImageTable.Columns)
}

func addImage(rows *pgxmock.Rows, id int64, name string, active bool) *pgxmock.Rows {
	return rows.AddRow(
		id, "img-"+name, name, "image/jpeg", int64(2048), "uploads/img-"+name,
		strp("events"), noString(), active, day0, day0,
	)
}

func newImage(name string) model.CreateGalleryImage {
	return model.CreateGalleryImage{
		Filename:     "img-" + name,
		OriginalName: name,
		MimeType:     "image/jpeg",
		Size:         2048,
		Path:         "uploads/img-" + name,
		Category:     strp("events"),
	}
}

func TestGalleryCreateManyKeepsEarlierItems(t *testing.T) {
	mock := newMock(t)
	repo := NewGalleryImageRepository(mock)

	mock.ExpectQuery(sqlText("INSERT INTO gallery_images")).
		WithArgs("img-a.jpg", "a.jpg", "image/jpeg", int64(2048), "uploads/img-a.jpg", strp("events"), noString(), true).
		WillReturnRows(addImage(galleryRows(), 1, "a.jpg", true))
	mock.ExpectQuery(sqlText("INSERT INTO gallery_images")).
		WithArgs("img-b.jpg", "b.jpg", "image/jpeg", int64(2048), "uploads/img-b.jpg", strp("events"), noString(), true).
		WillReturnError(&pgconn.PgError{Code: "23502", TableName: "gallery_images", ColumnName: "path"})
	mock.ExpectQuery(sqlText("INSERT INTO gallery_images")).
		WithArgs("img-c.jpg", "c.jpg", "image/jpeg", int64(2048), "uploads/img-c.jpg", strp("events"), noString(), true).
		WillReturnRows(addImage(galleryRows(), 3, "c.jpg", true))

	results := repo.CreateMany(context.Background(), []model.CreateGalleryImage{
		newImage("a.jpg"), newImage("b.jpg"), newImage("c.jpg"),
	})
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Equal(t, int64(1), results[0].Image.ID)

	require.ErrorIs(t, results[1].Err, errs.ErrConstraint)
	assert.Nil(t, results[1].Image)

	require.NoError(t, results[2].Err)
	assert.Equal(t, int64(3), results[2].Image.ID)
}

func TestGallerySearchIsActiveOnly(t *testing.T) {
	mock := newMock(t)
	repo := NewGalleryImageRepository(mock)

	mock.ExpectQuery(sqlText(gallerySelect+" WHERE is_active = $1 AND (original_name ILIKE $2 OR description ILIKE $3) ORDER BY created_at DESC, id DESC LIMIT 100 OFFSET 0")).
		WithArgs(true, "%day%", "%day%").
		WillReturnRows(addImage(galleryRows(), 5, "sports-day.jpg", true))

	got, err := repo.Search(context.Background(), "day", query.DefaultPage())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].OriginalName, "day")
}

func TestGalleryRecentDefaultsToTen(t *testing.T) {
	mock := newMock(t)
	repo := NewGalleryImageRepository(mock)

	mock.ExpectQuery(sqlText(gallerySelect+" WHERE is_active = $1 ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 0")).
		WithArgs(true).
		WillReturnRows(galleryRows())

	_, err := repo.Recent(context.Background(), 0)
	require.NoError(t, err)
}

func TestGalleryCategories(t *testing.T) {
	mock := newMock(t)
	repo := NewGalleryImageRepository(mock)

	mock.ExpectQuery(sqlText("GROUP BY category")).
		WillReturnRows(pgxmock.NewRows([]string{"category", "count"}).
			AddRow(strp("events"), int64(4)).
			AddRow(noString(), int64(1)))

	got, err := repo.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "events", *got[0].Category)
	assert.Equal(t, int64(4), got[0].Count)
	assert.Nil(t, got[1].Category)
}

func TestGalleryRemoveReturnsMetadata(t *testing.T) {
	mock := newMock(t)
	repo := NewGalleryImageRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(sqlText("DELETE FROM gallery_images WHERE id = $1 RETURNING id, filename")).
		WithArgs(int64(5)).
		WillReturnRows(addImage(galleryRows(), 5, "a.jpg", true))
	mock.ExpectQuery(sqlText("DELETE FROM gallery_images WHERE id = $1 RETURNING")).
		WithArgs(int64(5)).
		WillReturnRows(galleryRows())

	img, err := repo.Remove(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "uploads/img-a.jpg", img.Path)

	_, err = repo.Remove(ctx, 5)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGalleryToggleAndUpdate(t *testing.T) {
	mock := newMock(t)
	repo := NewGalleryImageRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(sqlText("UPDATE gallery_images SET is_active = NOT is_active, updated_at = now() WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(sqlText("UPDATE gallery_images SET category = $1, description = $2, updated_at = now() WHERE id = $3")).
		WithArgs("classroom", "", int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(sqlText("UPDATE gallery_images SET category = $1, updated_at = now() WHERE id = $2")).
		WithArgs(nil, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	n, err := repo.ToggleActive(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Update(ctx, 2, model.UpdateGalleryImage{
		Category:    query.NullableOf("classroom"),
		Description: query.NullableOf(""),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Update(ctx, 2, model.UpdateGalleryImage{Category: query.Null[string]()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGalleryStats(t *testing.T) {
	mock := newMock(t)
	repo := NewGalleryImageRepository(mock)

	mock.ExpectQuery(sqlText("FROM gallery_images")).
		WillReturnRows(pgxmock.NewRows([]string{"count", "active", "total_size"}).AddRow(int64(3), int64(2), int64(6144)))
	mock.ExpectQuery(sqlText("SELECT COALESCE(category, ''), COUNT(*) FROM gallery_images GROUP BY 1")).
		WillReturnRows(pgxmock.NewRows([]string{"category", "count"}).AddRow("events", int64(3)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.GalleryImageStats{
		Total:      3,
		Active:     2,
		ByCategory: map[string]int64{"events": 3},
		TotalSize:  6144,
	}, stats)
}
