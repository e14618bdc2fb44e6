package domain

// MailingList is a named collection of subscribers owned by one user.
type MailingList struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

// OwnerID implements Owned.
func (l *MailingList) OwnerID() int64 { return l.UserID }

// Subscriber is an email address enrolled in exactly one mailing list.
// Email is unique across the whole system, not per list.
type Subscriber struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	MailingListID int64  `json:"mailing_list_id"`
}
