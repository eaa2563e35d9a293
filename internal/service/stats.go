package service

import (
	"context"
	"fmt"

	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/repository"
)

// Report collects the stats of every repository.
type Report struct {
	Students         *model.StudentStats        `json:"students"`
	Courses          *model.CourseStats         `json:"courses"`
	ContactInquiries *model.ContactInquiryStats `json:"contact_inquiries"`
	Testimonials     *model.TestimonialStats    `json:"testimonials"`
	GalleryImages    *model.GalleryImageStats   `json:"gallery_images"`
	Users            *model.UserStats           `json:"users"`
}

type StatsService struct {
	repos *repository.Repositories
}

func NewStatsService(repos *repository.Repositories) *StatsService {
	return &StatsService{repos: repos}
}

// Report reads each repository's stats in turn. The sections are not taken
// from one snapshot.
func (s *StatsService) Report(ctx context.Context) (*Report, error) {
	var (
		r   Report
		err error
	)
	if r.Students, err = s.repos.Students.Stats(ctx); err != nil {
		return nil, fmt.Errorf("student stats: %w", err)
	}
	if r.Courses, err = s.repos.Courses.Stats(ctx); err != nil {
		return nil, fmt.Errorf("course stats: %w", err)
	}
	if r.ContactInquiries, err = s.repos.ContactInquiries.Stats(ctx); err != nil {
		return nil, fmt.Errorf("contact inquiry stats: %w", err)
	}
	if r.Testimonials, err = s.repos.Testimonials.Stats(ctx); err != nil {
		return nil, fmt.Errorf("testimonial stats: %w", err)
	}
	if r.GalleryImages, err = s.repos.GalleryImages.Stats(ctx); err != nil {
		return nil, fmt.Errorf("gallery image stats: %w", err)
	}
	if r.Users, err = s.repos.Users.Stats(ctx); err != nil {
		return nil, fmt.Errorf("user stats: %w", err)
	}
	return &r, nil
}
