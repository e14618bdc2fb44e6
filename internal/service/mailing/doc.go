// Package mailing schedules sends of a template to a mailing list.
//
// Delivery itself is a stub: Send only stamps sent_at. Nothing reads
// scheduled_at to trigger a send.
package mailing
