// Package auth turns credentials into bearer tokens and bearer tokens back
// into users.
//
// Every way a token can fail (bad signature, expiry, missing claim, revoked,
// deleted user) collapses to ErrUnauthorized so callers cannot tell them
// apart.
package auth
