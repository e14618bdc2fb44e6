package domain

// Template is reusable message content owned by one user.
type Template struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
}

// OwnerID implements Owned.
func (t *Template) OwnerID() int64 { return t.UserID }
