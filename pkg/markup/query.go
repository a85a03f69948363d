package markup

// Matcher selects elements.
type Matcher func(el *Element) bool

// Tags matches elements whose tag name is literally one of names.
func Tags(names ...string) Matcher {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return func(el *Element) bool {
		_, ok := set[el.Name]
		return ok
	}
}

// WithAttribute matches elements that carry any of the attribute names.
func WithAttribute(names ...string) Matcher {
	return func(el *Element) bool {
		return HasAttribute(el, names...)
	}
}

// And matches elements that satisfy every matcher.
func And(matchers ...Matcher) Matcher {
	return func(el *Element) bool {
		for _, m := range matchers {
			if !m(el) {
				return false
			}
		}
		return true
	}
}

// FindElements returns every element in the subtrees of roots that m
// matches, roots included, in depth-first pre-order. It returns nil when
// nothing matches.
func FindElements(roots []*Element, m Matcher) []*Element {
	var found []*Element
	for _, root := range roots {
		_ = Walk(root, func(el *Element) error {
			if m(el) {
				found = append(found, el)
			}
			return nil
		})
	}
	return found
}

// FindOutermost is like FindElements but does not descend into a matched
// element, so nested matches are reported once through their outermost
// ancestor.
func FindOutermost(roots []*Element, m Matcher) []*Element {
	var found []*Element
	for _, root := range roots {
		_ = Walk(root, func(el *Element) error {
			if m(el) {
				found = append(found, el)
				return SkipChildren
			}
			return nil
		})
	}
	return found
}

// Find returns the document's elements matching m in document order.
func (d *Document) Find(m Matcher) []*Element {
	return FindElements(d.Roots, m)
}

// Find returns the matching elements of the subtree rooted at e, e included.
func (e *Element) Find(m Matcher) []*Element {
	return FindElements([]*Element{e}, m)
}

// Descendants returns the matching elements below e, e excluded.
func (e *Element) Descendants(m Matcher) []*Element {
	return FindElements(e.Children, m)
}

// ChildElements returns the direct children of el matching m.
func ChildElements(el *Element, m Matcher) []*Element {
	var found []*Element
	for _, child := range el.Children {
		if m(child) {
			found = append(found, child)
		}
	}
	return found
}

// FirstChild returns the first direct child of el matching m, or nil.
func FirstChild(el *Element, m Matcher) *Element {
	for _, child := range el.Children {
		if m(child) {
			return child
		}
	}
	return nil
}

// Ancestor returns the nearest ancestor of el matching m, or nil.
func Ancestor(el *Element, m Matcher) *Element {
	for parent := el.Parent; parent != nil; parent = parent.Parent {
		if m(parent) {
			return parent
		}
	}
	return nil
}
