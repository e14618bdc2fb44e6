package mailing

import "github.com/ignite/listserv/internal/domain"

// Sentinel errors for the mailing service layer.
var (
	ErrNotFound    = &domain.Error{Kind: domain.ErrNotFound, Detail: "Mailing not found"}
	ErrAlreadySent = &domain.Error{Kind: domain.ErrConflict, Detail: "Mailing has already been sent"}
)
