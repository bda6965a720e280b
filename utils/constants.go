// File: utils/constants.go
package utils

import "time"

// Session-scoped Redis key prefixes.
const (
	// ReplacementContextPrefix keys the in-progress "swap this supplier" state.
	ReplacementContextPrefix = "replacement:"
	// ToastPrefix keys the one-shot last-action toast payload.
	ToastPrefix = "toast:"
	// RestoreModalPrefix keys the "restore modal on return" flag.
	RestoreModalPrefix = "restoremodal:"
	// CommitLockPrefix keys the per-session commit re-entrancy lock.
	CommitLockPrefix = "commitlock:"
)

// SessionStateTTL bounds how long session-scoped state survives; stale
// replacement contexts must not leak into unrelated sessions.
const SessionStateTTL = 30 * time.Minute

// ToastTTL is the time-to-live for one-shot toast payloads.
const ToastTTL = 10 * time.Minute

// CommitLockTTL caps how long a commit lock can be held if a commit dies
// before releasing it.
const CommitLockTTL = 15 * time.Second
