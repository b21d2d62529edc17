package widget

import "sync"

// Toggle is an open/closed flag, used for the mobile menu and for dialogs.
// The zero value is closed and ready to use.
type Toggle struct {
	mu   sync.RWMutex
	open bool
}

// Open opens the toggle.
func (t *Toggle) Open() {
	t.mu.Lock()
	t.open = true
	t.mu.Unlock()
}

// Close closes the toggle.
func (t *Toggle) Close() {
	t.mu.Lock()
	t.open = false
	t.mu.Unlock()
}

// Flip inverts the toggle and returns the new state.
func (t *Toggle) Flip() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.open = !t.open
	return t.open
}

// IsOpen reports whether the toggle is open.
func (t *Toggle) IsOpen() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.open
}

// AriaExpanded returns the aria-expanded attribute value for the state.
func (t *Toggle) AriaExpanded() string {
	if t.IsOpen() {
		return "true"
	}
	return "false"
}
