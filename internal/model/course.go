package model

import (
	"time"

	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
	"github.com/shopspring/decimal"
)

type Course struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Category    string              `json:"category"`
	Level       Level               `json:"level"`
	Duration    *string             `json:"duration"`
	Price       decimal.NullDecimal `json:"price"`
	MaxStudents *int                `json:"max_students"`
	Schedule    *string             `json:"schedule"`
	IsActive    bool                `json:"is_active"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type CreateCourse struct {
	Title       string           `json:"title" validate:"required,min=3,max=100"`
	Description *string          `json:"description"`
	Category    string           `json:"category" validate:"required,min=2,max=50"`
	Level       Level            `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Duration    *string          `json:"duration"`
	Price       *decimal.Decimal `json:"price"`
	MaxStudents *int             `json:"max_students" validate:"omitempty,gte=1,lte=100"`
	Schedule    *string          `json:"schedule"`
	// IsActive defaults to true when omitted.
	IsActive *query.Flag `json:"is_active"`
}

func (c *CreateCourse) Validate() error {
	if err := validate(c); err != nil {
		return err
	}
	return checkPrice(c.Price)
}

type UpdateCourse struct {
	Title       *string                `json:"title" validate:"omitempty,min=3,max=100"`
	Description query.Nullable[string] `json:"description"`
	Category    *string                `json:"category" validate:"omitempty,min=2,max=50"`
	Level       *Level                 `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration    query.Nullable[string] `json:"duration"`
	Price       *decimal.Decimal       `json:"price"`
	MaxStudents *int                   `json:"max_students" validate:"omitempty,gte=1,lte=100"`
	Schedule    query.Nullable[string] `json:"schedule"`
	IsActive    *query.Flag            `json:"is_active"`
}

func (u *UpdateCourse) Validate() error {
	if err := validate(u); err != nil {
		return err
	}
	return checkPrice(u.Price)
}

type CourseFilter struct {
	Category *string
	Level    *Level
	IsActive *query.Flag
	Search   string
}

type CourseStats struct {
	Total      int64            `json:"total"`
	Active     int64            `json:"active"`
	ByCategory map[string]int64 `json:"by_category"`
	ByLevel    map[Level]int64  `json:"by_level"`
}

// maxPrice is the largest value NUMERIC(10,2) can hold.
var maxPrice = decimal.New(1, 8)

func checkPrice(p *decimal.Decimal) error {
	if p == nil {
		return nil
	}
	if p.IsNegative() || p.GreaterThanOrEqual(maxPrice) || !p.Equal(p.Round(2)) {
		return validation.CustomValidationErrors{{
			Field:   "price",
			Message: "must be a non-negative amount with at most 8 digits and 2 decimals",
		}}
	}
	return nil
}
