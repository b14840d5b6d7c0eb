// Package testutil provides helpers shared by the package tests.
package testutil

import "time"

// FrozenClock yields a fixed wall-clock time so rendered views that embed
// "today" stay byte-identical across runs.
type FrozenClock struct {
	t time.Time
}

// NewFrozenClock creates a clock pinned to t.
func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{t: t}
}

// Now returns the pinned time. Suitable as a now-func for the TUI.
func (c *FrozenClock) Now() time.Time {
	return c.t
}

// Advance moves the pinned time forward by d.
func (c *FrozenClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
