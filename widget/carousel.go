// Package widget models the page's interactive state without any DOM: a
// slide carousel and open/closed toggles for the menu and dialogs.
package widget

import "sync"

// Carousel tracks which of n slides is active. Moving past either end wraps
// around. A zero-slide carousel ignores every operation.
type Carousel struct {
	mu      sync.RWMutex
	n       int
	current int
}

// NewCarousel returns a carousel of n slides showing the first one.
// Negative n is treated as zero.
func NewCarousel(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{n: n}
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.n
}

// Current returns the index of the active slide.
func (c *Carousel) Current() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// IsActive reports whether slide i is the active one.
func (c *Carousel) IsActive(i int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.n > 0 && i == c.current
}

// Show activates slide i. Out-of-range indices leave the carousel unchanged
// and return false.
func (c *Carousel) Show(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= c.n {
		return false
	}
	c.current = i
	return true
}

// Move advances by delta slides, wrapping at both ends, and returns the new
// index.
func (c *Carousel) Move(delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == 0 {
		return 0
	}
	next := (c.current + delta) % c.n
	if next < 0 {
		next += c.n
	}
	c.current = next
	return next
}

// Next shows the following slide, wrapping to the first.
func (c *Carousel) Next() int { return c.Move(1) }

// Previous shows the preceding slide, wrapping to the last.
func (c *Carousel) Previous() int { return c.Move(-1) }

// Activate reports whether a click on slide i should open its dialog.
// Only the active slide opens; clicks on the others are ignored.
func (c *Carousel) Activate(i int) bool {
	return c.IsActive(i)
}
