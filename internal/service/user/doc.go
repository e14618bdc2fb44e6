// Package user implements account registration, credential checks and the
// admin-only account management operations.
//
// The service never sees plaintext passwords past Register, Authenticate and
// Update: they go straight through the Hasher. It depends on the Repository
// interface defined in repository.go and never imports database/sql.
package user
