// Package fix provides the positional text edits used by migrations and the
// buffer that applies them to files.
package fix

import "fmt"

// Mode selects how a Change is spliced into the buffer.
type Mode int

const (
	// ModeInsert splices Text at Position without removing anything.
	ModeInsert Mode = iota

	// ModeReplace removes Remove at Position and splices Text in its place.
	ModeReplace
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeReplace:
		return "replace"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Change is a single positional edit of a file's content.
//
// For ModeReplace, Remove must match the buffer at
// [Position, Position+len(Remove)) when the change is applied.
type Change struct {
	// Position is the byte offset the change applies at.
	Position int

	// Text is the text spliced in at Position.
	Text string

	// Remove is the text expected at Position (ModeReplace only).
	Remove string

	// Mode selects insert or replace semantics.
	Mode Mode
}

// Insert returns a change that inserts text at pos.
func Insert(pos int, text string) Change {
	return Change{Position: pos, Text: text, Mode: ModeInsert}
}

// Replace returns a change that replaces remove, found at pos, with text.
func Replace(pos int, remove, text string) Change {
	return Change{Position: pos, Text: text, Remove: remove, Mode: ModeReplace}
}

// Delete returns a change that removes remove, found at pos.
func Delete(pos int, remove string) Change {
	return Replace(pos, remove, "")
}

// End returns the offset just past the removed range.
func (c Change) End() int {
	if c.Mode == ModeReplace {
		return c.Position + len(c.Remove)
	}
	return c.Position
}

// String renders the change for logs and error messages.
func (c Change) String() string {
	if c.Mode == ModeReplace {
		return fmt.Sprintf("replace@%d %q -> %q", c.Position, c.Remove, c.Text)
	}
	return fmt.Sprintf("insert@%d %q", c.Position, c.Text)
}
