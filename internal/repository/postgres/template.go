package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/template"
	"github.com/ignite/listserv/internal/service/user"
)

// TemplateRepo implements template.Repository against PostgreSQL.
type TemplateRepo struct{ db *sql.DB }

// NewTemplateRepo creates a Postgres-backed template repository.
func NewTemplateRepo(db *sql.DB) *TemplateRepo { return &TemplateRepo{db: db} }

func (r *TemplateRepo) Create(ctx context.Context, t *domain.Template) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO templates (name, content, user_id) VALUES ($1, $2, $3) RETURNING id`,
		t.Name, t.Content, t.UserID,
	).Scan(&t.ID)
	if isForeignKeyViolation(err) {
		return user.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("create template: %w", err)
	}
	return nil
}

func (r *TemplateRepo) Get(ctx context.Context, id int64) (*domain.Template, error) {
	t := &domain.Template{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, content, user_id FROM templates WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Content, &t.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, template.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (r *TemplateRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Template, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, content, user_id FROM templates WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	out := []domain.Template{}
	for rows.Next() {
		var t domain.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Content, &t.UserID); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TemplateRepo) Update(ctx context.Context, id int64, f template.UpdateFields) (*domain.Template, error) {
	if f.Name == nil && f.Content == nil {
		return r.Get(ctx, id)
	}

	sets := []string{}
	args := []any{}
	if f.Name != nil {
		args = append(args, *f.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if f.Content != nil {
		args = append(args, *f.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	args = append(args, id)

	t := &domain.Template{}
	q := fmt.Sprintf(`UPDATE templates SET %s WHERE id = $%d RETURNING id, name, content, user_id`,
		strings.Join(sets, ", "), len(args))
	err := r.db.QueryRowContext(ctx, q, args...).Scan(&t.ID, &t.Name, &t.Content, &t.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, template.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}
	return t, nil
}

// Delete removes the template and every mailing that uses it.
func (r *TemplateRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM mailings WHERE template_id = $1`, id); err != nil {
			return fmt.Errorf("delete template mailings: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete template: %w", err)
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return template.ErrNotFound
		}
		return nil
	})
}
