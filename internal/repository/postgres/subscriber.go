package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/mailinglist"
	"github.com/ignite/listserv/internal/service/subscriber"
)

// SubscriberRepo implements subscriber.Repository against PostgreSQL.
type SubscriberRepo struct{ db *sql.DB }

// NewSubscriberRepo creates a Postgres-backed subscriber repository.
func NewSubscriberRepo(db *sql.DB) *SubscriberRepo { return &SubscriberRepo{db: db} }

func (r *SubscriberRepo) Create(ctx context.Context, s *domain.Subscriber) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO subscribers (email, mailing_list_id) VALUES ($1, $2) RETURNING id`,
		s.Email, s.MailingListID,
	).Scan(&s.ID)
	switch {
	case isUniqueViolation(err):
		return subscriber.ErrConflict
	case isForeignKeyViolation(err):
		return mailinglist.ErrNotFound
	case err != nil:
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

func (r *SubscriberRepo) Get(ctx context.Context, id int64) (*domain.Subscriber, error) {
	s := &domain.Subscriber{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, mailing_list_id FROM subscribers WHERE id = $1`, id,
	).Scan(&s.ID, &s.Email, &s.MailingListID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, subscriber.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscriber: %w", err)
	}
	return s, nil
}

func (r *SubscriberRepo) ListByMailingList(ctx context.Context, listID int64) ([]domain.Subscriber, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, mailing_list_id FROM subscribers WHERE mailing_list_id = $1 ORDER BY id`, listID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	out := []domain.Subscriber{}
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.MailingListID); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubscriberRepo) ChangeEmail(ctx context.Context, id int64, email string) (*domain.Subscriber, error) {
	s := &domain.Subscriber{}
	err := r.db.QueryRowContext(ctx,
		`UPDATE subscribers SET email = $1 WHERE id = $2 RETURNING id, email, mailing_list_id`,
		email, id,
	).Scan(&s.ID, &s.Email, &s.MailingListID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, subscriber.ErrNotFound
	case isUniqueViolation(err):
		return nil, subscriber.ErrConflict
	case err != nil:
		return nil, fmt.Errorf("update subscriber: %w", err)
	}
	return s, nil
}

func (r *SubscriberRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return subscriber.ErrNotFound
	}
	return nil
}
