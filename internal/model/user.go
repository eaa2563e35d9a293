package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// User is an account. The password hash is never part of a read.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUser carries the plaintext password; the repository hashes it.
type CreateUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Role     Role   `json:"role" validate:"omitempty,oneof=student teacher admin"`
}

func (c *CreateUser) Validate() error {
	return validate(c)
}

// RoleOrDefault returns the requested role, falling back to student.
func (c *CreateUser) RoleOrDefault() Role {
	if c.Role == "" {
		return RoleStudent
	}
	return c.Role
}

type UpdateUser struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=50"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (u *UpdateUser) Validate() error {
	return validate(u)
}

type UserFilter struct {
	Role   *Role
	Search string
}

type UserStats struct {
	Total  int64          `json:"total"`
	ByRole map[Role]int64 `json:"by_role"`
}
