package template

import "github.com/ignite/listserv/internal/domain"

// Sentinel errors for the template service layer.
var (
	ErrNotFound  = &domain.Error{Kind: domain.ErrNotFound, Detail: "Template not found"}
	ErrForbidden = &domain.Error{Kind: domain.ErrForbidden, Detail: "You are not allowed to delete this template"}
)
