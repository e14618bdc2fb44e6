// Package mailinglist implements owner-scoped mailing list management.
//
// Every read, update and delete re-checks ownership with domain.CanAccess.
// A list that exists but belongs to someone else is reported exactly like a
// list that does not exist, so callers cannot discover other users' lists.
package mailinglist
