package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/user"
)

const userColumns = `id, username, hashed_password, email, is_active, is_admin`

// UserRepo implements user.Repository against PostgreSQL.
type UserRepo struct{ db *sql.DB }

// NewUserRepo creates a Postgres-backed user repository.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Username, &u.HashedPassword, &u.Email, &u.IsActive, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, hashed_password, email, is_active, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Username, u.HashedPassword, u.Email, u.IsActive, u.IsAdmin).Scan(&u.ID)
	if isUniqueViolation(err) {
		return user.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepo) Get(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email", email)
}

// getBy looks a user up by one of its unique columns. col is never user input.
func (r *UserRepo) getBy(ctx context.Context, col string, val any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+col+` = $1`, val))
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("get user by %s: %w", col, err)
	}
	return u, err
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *UserRepo) Update(ctx context.Context, id int64, f user.UpdateFields) (*domain.User, error) {
	if f.Empty() {
		return r.Get(ctx, id)
	}

	sets := []string{}
	args := []any{}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if f.Username != nil {
		add("username", *f.Username)
	}
	if f.HashedPassword != nil {
		add("hashed_password", *f.HashedPassword)
	}
	if f.Email != nil {
		add("email", *f.Email)
	}
	if f.IsAdmin != nil {
		add("is_admin", *f.IsAdmin)
	}
	args = append(args, id)

	q := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(sets, ", "), len(args))
	u, err := scanUser(r.db.QueryRowContext(ctx, q, args...))
	switch {
	case errors.Is(err, user.ErrNotFound):
		return nil, err
	case isUniqueViolation(err):
		return nil, user.ErrConflict
	case err != nil:
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}
