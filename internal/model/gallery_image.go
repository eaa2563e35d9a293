package model

import (
	"time"

	"github.com/Nishaantmazarallo/Mini-project/internal/query"
)

// GalleryImage is the metadata of an uploaded file. The file itself lives
// outside the database at Path.
type GalleryImage struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	Category     *string   `json:"category"`
	Description  *string   `json:"description"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateGalleryImage struct {
	Filename     string  `json:"filename" validate:"required"`
	OriginalName string  `json:"original_name" validate:"required"`
	MimeType     string  `json:"mime_type" validate:"required"`
	Size         int64   `json:"size" validate:"gte=0"`
	Path         string  `json:"path" validate:"required"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	// IsActive defaults to true when omitted.
	IsActive *query.Flag `json:"is_active"`
}

func (c *CreateGalleryImage) Validate() error {
	return validate(c)
}

type UpdateGalleryImage struct {
	OriginalName *string                `json:"original_name" validate:"omitempty,min=1"`
	Category     query.Nullable[string] `json:"category"`
	Description  query.Nullable[string] `json:"description"`
	IsActive     *query.Flag            `json:"is_active"`
}

func (u *UpdateGalleryImage) Validate() error {
	return validate(u)
}

type GalleryImageFilter struct {
	Category *string
	IsActive *query.Flag
	Search   string
}

// GalleryCategory is one row of the active category listing.
type GalleryCategory struct {
	Category *string `json:"category"`
	Count    int64   `json:"count"`
}

type GalleryImageStats struct {
	Total      int64            `json:"total"`
	Active     int64            `json:"active"`
	ByCategory map[string]int64 `json:"by_category"`
	// TotalSize is the sum of all stored file sizes in bytes.
	TotalSize int64 `json:"total_size"`
}

// GalleryImageResult is the outcome of one item of a batch insert.
type GalleryImageResult struct {
	Image *GalleryImage `json:"image,omitempty"`
	Err   error         `json:"-"`
}
