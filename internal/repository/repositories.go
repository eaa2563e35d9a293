package repository

// Repositories is a container for all repository instances.
//
// All of them share one DBTX, normally the application's pgxpool.Pool.
// Passing a pgx.Tx instead scopes every repository to that transaction.
type Repositories struct {
	Students         *StudentRepository
	Courses          *CourseRepository
	ContactInquiries *ContactInquiryRepository
	Testimonials     *TestimonialRepository
	GalleryImages    *GalleryImageRepository
	Users            *UserRepository
}

// NewRepositories constructs the repository container.
//
// bcryptCost applies to user passwords.
func NewRepositories(db DBTX, bcryptCost int) *Repositories {
	return &Repositories{
		Students:         NewStudentRepository(db),
		Courses:          NewCourseRepository(db),
		ContactInquiries: NewContactInquiryRepository(db),
		Testimonials:     NewTestimonialRepository(db),
		GalleryImages:    NewGalleryImageRepository(db),
		Users:            NewUserRepository(db, bcryptCost),
	}
}
