// Package subscriber manages the addresses enrolled in mailing lists.
//
// Subscribers have no owner of their own: access is granted through the
// parent list, so every operation first resolves the list on behalf of the
// caller. Subscriber emails are unique across the whole system.
package subscriber
