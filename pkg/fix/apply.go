package fix

import (
	"cmp"
	"slices"
)

// orderedChange pairs a change with the order it was added in.
type orderedChange struct {
	Change
	seq int
}

// SortChanges returns the changes in application order: position descending;
// at equal positions replaces come before inserts, then the most recently
// added first. Applying in this order leaves text inserted at one offset in
// the order it was added, ahead of any replacement text at that offset.
func SortChanges(changes []Change) []Change {
	ordered := make([]orderedChange, len(changes))
	for i, change := range changes {
		ordered[i] = orderedChange{Change: change, seq: i}
	}

	slices.SortFunc(ordered, func(a, b orderedChange) int {
		if c := cmp.Compare(b.Position, a.Position); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Mode, a.Mode); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	result := make([]Change, len(ordered))
	for i, oc := range ordered {
		result[i] = oc.Change
	}
	return result
}

// ApplyChanges applies changes to content back to front and returns the new
// content. content itself is not modified.
//
// Positions are offsets into content as given. Each replace is checked
// against the buffer as it stands when the change is reached, so a replace
// whose range was altered by an earlier-applied change fails with a
// *ConflictError instead of corrupting the output.
func ApplyChanges(content []byte, changes []Change) ([]byte, error) {
	if len(changes) == 0 {
		return content, nil
	}

	if err := ValidateChanges(changes, len(content)); err != nil {
		return nil, err
	}

	buf := make([]byte, len(content))
	copy(buf, content)

	for _, change := range SortChanges(changes) {
		next, err := splice(buf, change)
		if err != nil {
			return nil, err
		}
		buf = next
	}

	return buf, nil
}

// splice applies a single change to buf.
func splice(buf []byte, change Change) ([]byte, error) {
	end := change.Position
	if change.Mode == ModeReplace {
		end = change.End()
		if end > len(buf) {
			found := string(buf[min(change.Position, len(buf)):])
			return nil, &ConflictError{Change: change, Found: found}
		}
		if found := string(buf[change.Position:end]); found != change.Remove {
			return nil, &ConflictError{Change: change, Found: found}
		}
	}

	out := make([]byte, 0, len(buf)+len(change.Text)-(end-change.Position))
	out = append(out, buf[:change.Position]...)
	out = append(out, change.Text...)
	out = append(out, buf[end:]...)
	return out, nil
}
