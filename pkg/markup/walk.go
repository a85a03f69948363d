package markup

import "errors"

// SkipChildren may be returned by a WalkFunc to skip the element's subtree
// without stopping the walk.
var SkipChildren = errors.New("skip children")

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(el *Element) error

// Walk performs a pre-order traversal of the subtree rooted at el.
// If walkFunc returns SkipChildren, the element's children are not visited;
// any other non-nil error stops the walk and is returned.
func Walk(el *Element, walkFunc WalkFunc) error {
	if el == nil {
		return nil
	}

	if err := walkFunc(el); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}

	for _, child := range el.Children {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// Walk traverses every root of the document in order.
func (d *Document) Walk(walkFunc WalkFunc) error {
	for _, root := range d.Roots {
		if err := Walk(root, walkFunc); err != nil {
			return err
		}
	}
	return nil
}
