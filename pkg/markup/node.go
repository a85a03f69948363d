// Package markup parses Angular template markup into an element tree whose
// nodes carry byte-offset spans into the parsed content.
//
// Trees are immutable snapshots. Migrations never mutate them; they compute
// text edits from the spans and re-parse after the edits are flushed.
package markup

// Span is a half-open byte range [Start, End) into the content of the
// Document it came from. Spans are only valid for that exact content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Document is the result of parsing one template file.
type Document struct {
	// Path identifies the file the content was read from.
	Path string

	// Content is the exact text that was parsed.
	Content []byte

	// Roots are the top-level elements in document order.
	Roots []*Element

	lines []int
}

// Text returns the content covered by span.
func (d *Document) Text(span Span) string {
	return string(d.Content[span.Start:span.End])
}

// Element is a single element of the template.
type Element struct {
	// Name is the tag name as written, case preserved.
	Name string

	// Attrs are the start tag's attributes in source order.
	Attrs []*Attribute

	// Children are the child elements in document order. Text and comments
	// are not represented; they are addressed through offsets.
	Children []*Element

	// Parent is nil for root elements.
	Parent *Element

	// Doc is the document the element belongs to.
	Doc *Document

	// StartTag covers the opening tag from '<' through '>'.
	StartTag Span

	// EndTag covers the closing tag. It is nil for self-closing and void
	// elements and for elements whose end tag was omitted.
	EndTag *Span

	// SelfClosing is true when the start tag ends with "/>".
	SelfClosing bool

	end int
}

// Span returns the range of the whole element including its end tag.
func (e *Element) Span() Span {
	return Span{Start: e.StartTag.Start, End: e.end}
}

// ContentSpan returns the range between the start tag and the end tag.
// It is empty for self-closing and void elements.
func (e *Element) ContentSpan() Span {
	if e.EndTag != nil {
		return Span{Start: e.StartTag.End, End: e.EndTag.Start}
	}
	if e.SelfClosing || IsVoid(e.Name) {
		return Span{Start: e.StartTag.End, End: e.StartTag.End}
	}
	return Span{Start: e.StartTag.End, End: e.end}
}

// Source returns the element's full text.
func (e *Element) Source() string {
	return e.Doc.Text(e.Span())
}

// InnerText returns the raw text between the start and end tags.
func (e *Element) InnerText() string {
	return e.Doc.Text(e.ContentSpan())
}

// StartTagText returns the text of the opening tag.
func (e *Element) StartTagText() string {
	return e.Doc.Text(e.StartTag)
}

// EndTagText returns the text of the closing tag, or "" if there is none.
func (e *Element) EndTagText() string {
	if e.EndTag == nil {
		return ""
	}
	return e.Doc.Text(*e.EndTag)
}

// IsRoot reports whether the element has no parent element.
func (e *Element) IsRoot() bool {
	return e.Parent == nil
}

// Attribute is one attribute of a start tag.
type Attribute struct {
	// Name is the attribute name as written, including any binding syntax
	// such as "[label]" or "(click)".
	Name string

	// Value is the raw value with surrounding quotes removed.
	Value string

	// Quote is the quote character used, or 0 for unquoted and valueless
	// attributes.
	Quote byte

	// HasValue is false for bare attributes like "igxLabel".
	HasValue bool

	// Span covers name="value".
	Span Span

	// NameSpan covers the name only.
	NameSpan Span

	// ValueSpan covers the value without quotes. It is empty at Span.End
	// when the attribute has no value.
	ValueSpan Span
}
