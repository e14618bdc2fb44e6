package domain

// Owned is implemented by every entity that belongs to exactly one user.
type Owned interface {
	OwnerID() int64
}

// CanAccess is the single ownership predicate used by every service before
// reading, changing or deleting an owned entity. A nil user or entity never
// has access.
func CanAccess(u *User, e Owned) bool {
	if u == nil || e == nil {
		return false
	}
	return e.OwnerID() == u.ID
}
