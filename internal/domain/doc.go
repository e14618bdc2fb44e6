// Package domain defines the core business types for the listserv mailing
// service: users, mailing lists, subscribers, templates and mailings.
//
// Types in this package are plain value objects. They carry no database
// handles and no HTTP concerns; handlers, services and repositories all
// speak in these types.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - JSON tags are allowed (they're metadata, not behavior)
//   - Pure predicates are allowed (CanAccess, IsSent)
//   - The error taxonomy shared by all services lives here
package domain
