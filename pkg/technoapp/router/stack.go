package router

import "github.com/BrandonKowalski/technoapp/pkg/technoapp/screen"

// StackEntry represents a single entry in the back stack.
// It stores the route and any ephemeral UI state the screen recorded
// while it was visible (scroll position, search text).
type StackEntry struct {
	Route screen.Route
	State any
}

// Stack is the ordered navigation history, bottom first.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds a new entry on top of the stack.
func (s *Stack) Push(entry StackEntry) {
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// LastIndex returns the position of the topmost entry for route, or -1.
func (s *Stack) LastIndex(route screen.Route) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Route == route {
			return i
		}
	}
	return -1
}

// Truncate keeps the bottom n entries and returns the removed ones,
// top first.
func (s *Stack) Truncate(n int) []StackEntry {
	if n < 0 {
		n = 0
	}
	if n >= len(s.entries) {
		return nil
	}

	removed := make([]StackEntry, 0, len(s.entries)-n)
	for i := len(s.entries) - 1; i >= n; i-- {
		removed = append(removed, s.entries[i])
	}
	clear(s.entries[n:])
	s.entries = s.entries[:n]
	return removed
}

// Routes returns the routes on the stack, bottom first.
func (s *Stack) Routes() []screen.Route {
	out := make([]screen.Route, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Route
	}
	return out
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
