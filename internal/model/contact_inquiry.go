package model

import (
	"time"

	"github.com/Nishaantmazarallo/Mini-project/internal/query"
)

type InquiryStatus string

const (
	InquiryStatusNew        InquiryStatus = "new"
	InquiryStatusInProgress InquiryStatus = "in_progress"
	InquiryStatusResponded  InquiryStatus = "responded"
	InquiryStatusClosed     InquiryStatus = "closed"
)

type ContactInquiry struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone"`
	Program   *string       `json:"program"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CreateContactInquiry struct {
	Name    string        `json:"name" validate:"required,min=2,max=50"`
	Email   string        `json:"email" validate:"required,email"`
	Phone   *string       `json:"phone"`
	Program *string       `json:"program" validate:"omitempty,oneof=abacus brain-development school-partnership competition"`
	Message string        `json:"message" validate:"required,min=10,max=1000"`
	Status  InquiryStatus `json:"status" validate:"omitempty,oneof=new in_progress responded closed"`
}

func (c *CreateContactInquiry) Validate() error {
	return validate(c)
}

// StatusOrDefault returns the requested status, falling back to new.
func (c *CreateContactInquiry) StatusOrDefault() InquiryStatus {
	if c.Status == "" {
		return InquiryStatusNew
	}
	return c.Status
}

type UpdateContactInquiry struct {
	Name    *string                `json:"name" validate:"omitempty,min=2,max=50"`
	Email   *string                `json:"email" validate:"omitempty,email"`
	Phone   query.Nullable[string] `json:"phone"`
	Program *string                `json:"program" validate:"omitempty,oneof=abacus brain-development school-partnership competition"`
	Message *string                `json:"message" validate:"omitempty,min=10,max=1000"`
	Status  *InquiryStatus         `json:"status" validate:"omitempty,oneof=new in_progress responded closed"`
}

func (u *UpdateContactInquiry) Validate() error {
	return validate(u)
}

type ContactInquiryFilter struct {
	Status  *InquiryStatus
	Program *string
	Search  string
}

type ContactInquiryStats struct {
	Total    int64                   `json:"total"`
	ByStatus map[InquiryStatus]int64 `json:"by_status"`
	// ByProgram groups inquiries without a program under "".
	ByProgram map[string]int64 `json:"by_program"`
	Recent    int64            `json:"recent"`
}
