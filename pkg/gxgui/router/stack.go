package router

// StackEntry is one menu the user can come back to: its identifier, the
// input it was called with and the resume state it returned.
type StackEntry struct {
	Menu   Menu
	Input  any
	Resume any
}

// Stack is the navigation history.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push records a menu when navigating forward from it.
func (s *Stack) Push(menu Menu, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Menu:   menu,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil when empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it, or nil when empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack) Len() int {
	return len(s.entries)
}

func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
