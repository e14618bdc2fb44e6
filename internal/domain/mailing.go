package domain

import "time"

// Mailing is a scheduled send of one template to one mailing list.
//
// MailingListID and TemplateID are not cascaded: deleting a list or template
// that a mailing still points at is refused by the database.
type Mailing struct {
	ID            int64      `json:"id"`
	MailingListID int64      `json:"mailing_list_id"`
	TemplateID    int64      `json:"template_id"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
	SentAt        *time.Time `json:"sent_at"`
	UserID        int64      `json:"user_id"`
}

// OwnerID implements Owned.
func (m *Mailing) OwnerID() int64 { return m.UserID }

// IsSent reports whether the send stub has already stamped the mailing.
func (m *Mailing) IsSent() bool { return m.SentAt != nil }
