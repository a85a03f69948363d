package markup

import "strings"

// AttrNames returns the accepted spellings of an input: the plain attribute
// and its property binding.
func AttrNames(name string) []string {
	return []string{name, "[" + name + "]"}
}

// HasAttribute reports whether the start tag of el carries an attribute
// spelled as any of names.
func HasAttribute(el *Element, names ...string) bool {
	for _, attr := range el.Attrs {
		if nameIn(attr.Name, names) {
			return true
		}
	}
	return false
}

// GetAttribute returns every attribute of el spelled as any of names, in
// source order. Duplicates are kept.
func GetAttribute(el *Element, names ...string) []*Attribute {
	var found []*Attribute
	for _, attr := range el.Attrs {
		if nameIn(attr.Name, names) {
			found = append(found, attr)
		}
	}
	return found
}

// FirstAttribute returns the first attribute of el spelled as any of names,
// or nil.
func FirstAttribute(el *Element, names ...string) *Attribute {
	for _, attr := range el.Attrs {
		if nameIn(attr.Name, names) {
			return attr
		}
	}
	return nil
}

func nameIn(name string, names []string) bool {
	for _, candidate := range names {
		if name == candidate {
			return true
		}
	}
	return false
}

// AttrInsertPos returns the offset just past the last attribute of the start
// tag, or past the tag name when there are none. Text inserted there lands
// inside the start tag ahead of any "/>" or ">".
func (e *Element) AttrInsertPos() int {
	if len(e.Attrs) > 0 {
		return e.Attrs[len(e.Attrs)-1].Span.End
	}
	return e.StartTag.Start + 1 + len(e.Name)
}

// Bound reports whether the attribute is a property binding: "[x]",
// "[(x)]", "bind-x" or "bindon-x".
func (a *Attribute) Bound() bool {
	name := a.Name
	switch {
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		return true
	case strings.HasPrefix(name, "bind-"), strings.HasPrefix(name, "bindon-"):
		return true
	default:
		return false
	}
}

// LogicalName returns the name with any binding syntax removed, so that
// "label", "[label]" and "bind-label" all yield "label".
func (a *Attribute) LogicalName() string {
	name := a.Name
	switch {
	case strings.HasPrefix(name, "[(") && strings.HasSuffix(name, ")]"):
		return name[2 : len(name)-2]
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		return name[1 : len(name)-1]
	case strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")"):
		return name[1 : len(name)-1]
	case strings.HasPrefix(name, "bindon-"):
		return strings.TrimPrefix(name, "bindon-")
	case strings.HasPrefix(name, "bind-"):
		return strings.TrimPrefix(name, "bind-")
	case strings.HasPrefix(name, "on-"):
		return strings.TrimPrefix(name, "on-")
	default:
		return name
	}
}

// Interpolated returns the value as template text: bound values become
// "{{expr}}", literal values are returned as written.
func (a *Attribute) Interpolated() string {
	if a.Bound() {
		return "{{" + a.Value + "}}"
	}
	return a.Value
}

// RemovalSpan extends the attribute's span backwards over the whitespace
// separating it from the previous token, so deleting the span leaves no
// stray blank.
func (a *Attribute) RemovalSpan(content []byte) Span {
	start := a.Span.Start
	for start > 0 && isSpace(content[start-1]) {
		start--
	}
	return Span{Start: start, End: a.Span.End}
}
