package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/mailing"
)

const mailingColumns = `id, mailing_list_id, template_id, scheduled_at, sent_at, user_id`

// MailingRepo implements mailing.Repository against PostgreSQL.
type MailingRepo struct{ db *sql.DB }

// NewMailingRepo creates a Postgres-backed mailing repository.
func NewMailingRepo(db *sql.DB) *MailingRepo { return &MailingRepo{db: db} }

func scanMailing(row interface{ Scan(...any) error }) (*domain.Mailing, error) {
	m := &domain.Mailing{}
	var scheduled time.Time
	var sent sql.NullTime
	if err := row.Scan(&m.ID, &m.MailingListID, &m.TemplateID, &scheduled, &sent, &m.UserID); err != nil {
		return nil, err
	}
	scheduled = scheduled.UTC()
	m.ScheduledAt = &scheduled
	if sent.Valid {
		t := sent.Time.UTC()
		m.SentAt = &t
	}
	return m, nil
}

func (r *MailingRepo) Create(ctx context.Context, m *domain.Mailing) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO mailings (mailing_list_id, template_id, scheduled_at, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, m.MailingListID, m.TemplateID, m.ScheduledAt, m.UserID).Scan(&m.ID)
	if isForeignKeyViolation(err) {
		return domain.Invalid("mailing list or template no longer exists")
	}
	if err != nil {
		return fmt.Errorf("create mailing: %w", err)
	}
	return nil
}

func (r *MailingRepo) Get(ctx context.Context, id int64) (*domain.Mailing, error) {
	return getMailing(ctx, r.db, id)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getMailing(ctx context.Context, q queryRower, id int64) (*domain.Mailing, error) {
	m, err := scanMailing(q.QueryRowContext(ctx,
		`SELECT `+mailingColumns+` FROM mailings WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mailing.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get mailing: %w", err)
	}
	return m, nil
}

func (r *MailingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Mailing, error) {
	return r.list(ctx, `SELECT `+mailingColumns+` FROM mailings WHERE user_id = $1 ORDER BY id`, userID)
}

func (r *MailingRepo) ListAll(ctx context.Context) ([]domain.Mailing, error) {
	return r.list(ctx, `SELECT `+mailingColumns+` FROM mailings ORDER BY id`)
}

func (r *MailingRepo) list(ctx context.Context, q string, args ...any) ([]domain.Mailing, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list mailings: %w", err)
	}
	defer rows.Close()

	out := []domain.Mailing{}
	for rows.Next() {
		m, err := scanMailing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mailing: %w", err)
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// MarkSent stamps sent_at once. The row is locked so two concurrent sends
// cannot both succeed.
func (r *MailingRepo) MarkSent(ctx context.Context, id int64, at time.Time) (*domain.Mailing, error) {
	var out *domain.Mailing
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var sent sql.NullTime
		err := tx.QueryRowContext(ctx,
			`SELECT sent_at FROM mailings WHERE id = $1 FOR UPDATE`, id).Scan(&sent)
		if errors.Is(err, sql.ErrNoRows) {
			return mailing.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("lock mailing: %w", err)
		}
		if sent.Valid {
			return mailing.ErrAlreadySent
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE mailings SET sent_at = $1 WHERE id = $2`, at, id); err != nil {
			return fmt.Errorf("mark sent: %w", err)
		}
		out, err = getMailing(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MailingRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mailings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mailing: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mailing.ErrNotFound
	}
	return nil
}
