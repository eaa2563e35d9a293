package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/Nishaantmazarallo/Mini-project/internal/errs"
	"github.com/Nishaantmazarallo/Mini-project/internal/model"
	"github.com/Nishaantmazarallo/Mini-project/internal/query"
	"github.com/Nishaantmazarallo/Mini-project/internal/sqlerr"
	"github.com/Nishaantmazarallo/Mini-project/internal/validation"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const userEntity = "user"

// DefaultBcryptCost is used when the repository is built with a cost
// outside bcrypt's accepted range.
const DefaultBcryptCost = 12

var userTable = query.Table{
	Name:          "users",
	Columns:       []string{"id", "email", "name", "role", "is_active", "created_at", "updated_at"},
	SearchColumns: []string{"name", "email"},
}

var errInvalidCredentials = errs.NewUnauthorizedError("Invalid email or password")

func scanUser(row scanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// NormalizeEmail is applied to every email written or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserRepository stores accounts. Deactivated users are invisible to every
// read and cannot authenticate.
type UserRepository struct {
	db   DBTX
	t    *table[model.User]
	cost int
}

// NewUserRepository returns a repository that hashes passwords at
// bcryptCost, clamped to the range bcrypt accepts.
func NewUserRepository(db DBTX, bcryptCost int) *UserRepository {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = DefaultBcryptCost
	}
	return &UserRepository{
		db:   db,
		t:    &table[model.User]{db: db, entity: userEntity, def: userTable, scan: scanUser},
		cost: bcryptCost,
	}
}

func (r *UserRepository) hash(password, op string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", errs.NewInvalidInputError("Validation failed", []errs.FieldError{
			{Field: "password", Error: "must not exceed 72 bytes"},
		}).WithOp(userEntity, op)
	}
	if err != nil {
		return "", sqlerr.HandleError(err, userEntity, op)
	}
	return string(h), nil
}

// Create hashes the password and inserts the user. An email already in use
// yields a constraint error from users_email_key.
func (r *UserRepository) Create(ctx context.Context, in model.CreateUser) (*model.User, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Check(&in); err != nil {
		return nil, sqlerr.HandleError(err, userEntity, "create")
	}
	hash, err := r.hash(in.Password, "create")
	if err != nil {
		return nil, err
	}
	return r.t.insert(ctx, `
		INSERT INTO users (email, password, name, role, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING `+columns(userTable),
		in.Email, hash, in.Name, in.RoleOrDefault(),
	)
}

// FindByID returns the active user with id. The password hash is never
// selected.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := queryOne(ctx, r.db, scanUser,
		"SELECT "+columns(userTable)+" FROM users WHERE id = $1 AND is_active", id)
	if err != nil {
		return nil, sqlerr.HandleError(err, userEntity, "find")
	}
	return u, nil
}

// FindByEmail returns the active user with the normalized email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := queryOne(ctx, r.db, scanUser,
		"SELECT "+columns(userTable)+" FROM users WHERE email = $1 AND is_active", NormalizeEmail(email))
	if err != nil {
		return nil, sqlerr.HandleError(err, userEntity, "find by email")
	}
	return u, nil
}

// Authenticate checks password against the stored hash of the active user
// with this email. Unknown emails, inactive users and wrong passwords all
// produce the same unauthorized error.
func (r *UserRepository) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	var (
		u    model.User
		hash string
	)
	err := r.db.QueryRow(ctx,
		"SELECT "+columns(userTable)+", password FROM users WHERE email = $1 AND is_active",
		NormalizeEmail(email),
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errInvalidCredentials.WithOp(userEntity, "authenticate")
	}
	if err != nil {
		return nil, sqlerr.HandleError(err, userEntity, "authenticate")
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, errInvalidCredentials.WithOp(userEntity, "authenticate")
	}
	return &u, nil
}

func userConditions(f model.UserFilter) *query.Conditions {
	c := query.Where().Equal("is_active", true)
	query.EqualIfPresent(c, "role", f.Role)
	return c.Search(f.Search, userTable.SearchColumns...)
}

// List returns active users, newest first.
func (r *UserRepository) List(ctx context.Context, page query.Page, f model.UserFilter) ([]model.User, error) {
	return r.t.list(ctx, "list", userConditions(f), page)
}

func (r *UserRepository) Count(ctx context.Context, f model.UserFilter) (int64, error) {
	return r.t.count(ctx, "count", userConditions(f))
}

func (r *UserRepository) ListByRole(ctx context.Context, role model.Role, page query.Page) ([]model.User, error) {
	return r.List(ctx, page, model.UserFilter{Role: &role})
}

// UpdateProfile changes name and email, whichever are supplied.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, in model.UpdateUser) (int64, error) {
	if in.Email != nil {
		email := NormalizeEmail(*in.Email)
		in.Email = &email
	}
	if err := validation.Check(&in); err != nil {
		return 0, sqlerr.HandleError(err, userEntity, "update profile")
	}
	c := &query.Changes{}
	query.SetIfPresent(c, "name", in.Name)
	query.SetIfPresent(c, "email", in.Email)
	return r.t.update(ctx, "update profile", id, c)
}

// UpdatePassword hashes and stores a new password.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, password string) (int64, error) {
	if password == "" {
		return 0, errs.NewInvalidInputError("Validation failed", []errs.FieldError{
			{Field: "password", Error: "is required"},
		}).WithOp(userEntity, "update password")
	}
	hash, err := r.hash(password, "update password")
	if err != nil {
		return 0, err
	}
	return r.t.update(ctx, "update password", id, (&query.Changes{}).Set("password", hash))
}

// Deactivate hides the user from reads and blocks authentication. The row
// is kept.
func (r *UserRepository) Deactivate(ctx context.Context, id int64) (int64, error) {
	return r.t.exec(ctx, "deactivate",
		"UPDATE users SET is_active = false, updated_at = now() WHERE id = $1 AND is_active", id)
}

// Delete physically removes the row. Students referencing it make this
// fail with a constraint error.
func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return r.t.delete(ctx, id)
}

// Stats counts active users, in total and per role.
func (r *UserRepository) Stats(ctx context.Context) (*model.UserStats, error) {
	const op = "stats"
	stats := &model.UserStats{}

	total, err := countRows(ctx, r.db, "SELECT COUNT(*) FROM users WHERE is_active")
	if err != nil {
		return nil, sqlerr.HandleError(err, userEntity, op)
	}
	stats.Total = total

	stats.ByRole, err = groupCounts[model.Role](ctx, r.db,
		"SELECT role, COUNT(*) FROM users WHERE is_active GROUP BY role")
	if err != nil {
		return nil, sqlerr.HandleError(err, userEntity, op)
	}
	return stats, nil
}
