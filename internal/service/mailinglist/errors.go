package mailinglist

import "github.com/ignite/listserv/internal/domain"

// Sentinel errors for the mailing list service layer.
var ErrNotFound = &domain.Error{Kind: domain.ErrNotFound, Detail: "Mailing list not found"}
