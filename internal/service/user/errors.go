package user

import "github.com/ignite/listserv/internal/domain"

// Sentinel errors for the user service layer.
var (
	ErrNotFound           = &domain.Error{Kind: domain.ErrNotFound, Detail: "User not found"}
	ErrConflict           = &domain.Error{Kind: domain.ErrConflict, Detail: "Username or email already registered"}
	ErrInvalidCredentials = &domain.Error{Kind: domain.ErrUnauthorized, Detail: "Invalid username or password"}
)
