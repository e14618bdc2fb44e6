// Package template implements owner-scoped message templates.
//
// Reads and updates of another user's template report ErrNotFound. Deletion
// is the one place that tells the two cases apart: deleting someone else's
// existing template fails with ErrForbidden.
package template
