// Package editwindow decides whether a transaction may still be changed.
package editwindow

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_tracker/internal/apperrors"
)

// DefaultWindow is how long after creation a transaction stays editable.
const DefaultWindow = 12 * time.Hour

// Policy time-boxes updates and deletes of transactions.
type Policy struct {
	Window time.Duration
}

// Default returns a policy with the 12 hour window.
func Default() Policy {
	return Policy{Window: DefaultWindow}
}

// New returns a policy with the given window, falling back to the default for non-positive values.
func New(window time.Duration) Policy {
	if window <= 0 {
		return Default()
	}
	return Policy{Window: window}
}

// IsEditable reports whether now is strictly inside the window that starts at createdAt.
func (p Policy) IsEditable(createdAt, now time.Time) bool {
	return now.Sub(createdAt) < p.Window
}

// EditableUntil is the first instant at which the record is no longer editable.
func (p Policy) EditableUntil(createdAt time.Time) time.Time {
	return createdAt.Add(p.Window)
}

// Check returns an error wrapping apperrors.ErrEditWindowExpired once the window has closed.
func (p Policy) Check(createdAt, now time.Time) error {
	if p.IsEditable(createdAt, now) {
		return nil
	}
	return fmt.Errorf("%w: created at %s, editable until %s",
		apperrors.ErrEditWindowExpired,
		createdAt.UTC().Format(time.RFC3339),
		p.EditableUntil(createdAt).UTC().Format(time.RFC3339))
}
