package model

import (
	"time"

	"github.com/Nishaantmazarallo/Mini-project/internal/query"
)

// Testimonial is public feedback. Only approved testimonials are shown
// publicly. A rejected testimonial is stored exactly like one that was
// never reviewed.
type Testimonial struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	Role       *string   `json:"role"`
	Message    string    `json:"message"`
	Rating     int       `json:"rating"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateTestimonial struct {
	Name    string  `json:"name" validate:"required,min=2,max=50"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Role    *string `json:"role" validate:"omitempty,min=2,max=30"`
	Message string  `json:"message" validate:"required,min=10,max=500"`
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	// IsApproved defaults to false when omitted.
	IsApproved *query.Flag `json:"is_approved"`
}

func (c *CreateTestimonial) Validate() error {
	return validate(c)
}

type UpdateTestimonial struct {
	Name       *string     `json:"name" validate:"omitempty,min=2,max=50"`
	Email      *string     `json:"email" validate:"omitempty,email"`
	Role       *string     `json:"role" validate:"omitempty,min=2,max=30"`
	Message    *string     `json:"message" validate:"omitempty,min=10,max=500"`
	Rating     *int        `json:"rating" validate:"omitempty,gte=1,lte=5"`
	IsApproved *query.Flag `json:"is_approved"`
}

func (u *UpdateTestimonial) Validate() error {
	return validate(u)
}

type TestimonialFilter struct {
	IsApproved *query.Flag
	Rating     *int
	Search     string
}

type TestimonialStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	// AverageRating is over approved testimonials, rounded to one decimal.
	// It is 0 when nothing is approved.
	AverageRating float64       `json:"average_rating"`
	ByRating      map[int]int64 `json:"by_rating"`
}
