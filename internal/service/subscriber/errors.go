package subscriber

import "github.com/ignite/listserv/internal/domain"

// Sentinel errors for the subscriber service layer.
var (
	ErrNotFound = &domain.Error{Kind: domain.ErrNotFound, Detail: "Subscriber not found"}
	ErrConflict = &domain.Error{Kind: domain.ErrConflict, Detail: "Email is already subscribed"}
)
