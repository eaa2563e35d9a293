package model

import (
	"time"

	"github.com/Nishaantmazarallo/Mini-project/internal/query"
)

type StudentStatus string

const (
	StudentStatusPending   StudentStatus = "pending"
	StudentStatusActive    StudentStatus = "active"
	StudentStatusCompleted StudentStatus = "completed"
	StudentStatusCancelled StudentStatus = "cancelled"
)

type Student struct {
	ID             int64         `json:"id"`
	UserID         *int64        `json:"user_id"`
	Name           string        `json:"name"`
	Age            int           `json:"age"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Level          Level         `json:"level"`
	ParentName     *string       `json:"parent_name"`
	ParentPhone    *string       `json:"parent_phone"`
	Address        *string       `json:"address"`
	EnrollmentDate time.Time     `json:"enrollment_date"`
	Status         StudentStatus `json:"status"`
	Notes          *string       `json:"notes"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type CreateStudent struct {
	UserID      *int64        `json:"user_id"`
	Name        string        `json:"name" validate:"required,min=2,max=50"`
	Age         int           `json:"age" validate:"required,gte=5,lte=18"`
	Email       string        `json:"email" validate:"required,email"`
	Phone       string        `json:"phone" validate:"required"`
	Level       Level         `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	ParentName  *string       `json:"parent_name"`
	ParentPhone *string       `json:"parent_phone"`
	Address     *string       `json:"address"`
	Status      StudentStatus `json:"status" validate:"omitempty,oneof=pending active completed cancelled"`
	Notes       *string       `json:"notes"`
}

func (c *CreateStudent) Validate() error {
	return validate(c)
}

// StatusOrDefault returns the requested status, falling back to pending.
func (c *CreateStudent) StatusOrDefault() StudentStatus {
	if c.Status == "" {
		return StudentStatusPending
	}
	return c.Status
}

// UpdateStudent is a partial update. enrollment_date is set once at
// creation and cannot be changed.
type UpdateStudent struct {
	UserID      query.Nullable[int64]  `json:"user_id"`
	Name        *string                `json:"name" validate:"omitempty,min=2,max=50"`
	Age         *int                   `json:"age" validate:"omitempty,gte=5,lte=18"`
	Email       *string                `json:"email" validate:"omitempty,email"`
	Phone       *string                `json:"phone"`
	Level       *Level                 `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	ParentName  query.Nullable[string] `json:"parent_name"`
	ParentPhone query.Nullable[string] `json:"parent_phone"`
	Address     query.Nullable[string] `json:"address"`
	Status      *StudentStatus         `json:"status" validate:"omitempty,oneof=pending active completed cancelled"`
	Notes       query.Nullable[string] `json:"notes"`
}

func (u *UpdateStudent) Validate() error {
	return validate(u)
}

type StudentFilter struct {
	Status *StudentStatus
	Level  *Level
	Search string
}

type StudentStats struct {
	Total    int64                   `json:"total"`
	ByStatus map[StudentStatus]int64 `json:"by_status"`
	ByLevel  map[Level]int64         `json:"by_level"`
	// Recent counts enrollments in the trailing seven days.
	Recent int64 `json:"recent"`
}
