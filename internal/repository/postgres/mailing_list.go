package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/mailinglist"
	"github.com/ignite/listserv/internal/service/user"
)

// MailingListRepo implements mailinglist.Repository against PostgreSQL.
type MailingListRepo struct{ db *sql.DB }

// NewMailingListRepo creates a Postgres-backed mailing list repository.
func NewMailingListRepo(db *sql.DB) *MailingListRepo { return &MailingListRepo{db: db} }

func (r *MailingListRepo) Create(ctx context.Context, l *domain.MailingList) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO mailing_lists (name, user_id) VALUES ($1, $2) RETURNING id`,
		l.Name, l.UserID,
	).Scan(&l.ID)
	if isForeignKeyViolation(err) {
		return user.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("create mailing list: %w", err)
	}
	return nil
}

func (r *MailingListRepo) Get(ctx context.Context, id int64) (*domain.MailingList, error) {
	l := &domain.MailingList{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, user_id FROM mailing_lists WHERE id = $1`, id,
	).Scan(&l.ID, &l.Name, &l.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mailinglist.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get mailing list: %w", err)
	}
	return l, nil
}

func (r *MailingListRepo) ListByUser(ctx context.Context, userID int64) ([]domain.MailingList, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, user_id FROM mailing_lists WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list mailing lists: %w", err)
	}
	defer rows.Close()

	out := []domain.MailingList{}
	for rows.Next() {
		var l domain.MailingList
		if err := rows.Scan(&l.ID, &l.Name, &l.UserID); err != nil {
			return nil, fmt.Errorf("scan mailing list: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *MailingListRepo) Rename(ctx context.Context, id int64, name string) (*domain.MailingList, error) {
	l := &domain.MailingList{}
	err := r.db.QueryRowContext(ctx,
		`UPDATE mailing_lists SET name = $1 WHERE id = $2 RETURNING id, name, user_id`,
		name, id,
	).Scan(&l.ID, &l.Name, &l.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mailinglist.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rename mailing list: %w", err)
	}
	return l, nil
}

// Delete removes the list with its mailings. Subscribers go through the
// foreign key cascade.
func (r *MailingListRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM mailings WHERE mailing_list_id = $1`, id); err != nil {
			return fmt.Errorf("delete list mailings: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM mailing_lists WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete mailing list: %w", err)
		}
		n, _ := res.RowsAffected()
		if n == 0 {
			return mailinglist.ErrNotFound
		}
		return nil
	})
}
