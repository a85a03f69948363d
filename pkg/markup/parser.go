package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// ErrParse is the sentinel matched by every *ParseError.
var ErrParse = errors.New("malformed template")

// ParseError describes markup the parser could not build a tree from.
type ParseError struct {
	Path    string
	Offset  int
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
}

// Unwrap allows errors.Is(err, ErrParse).
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// voidElements never have content or an end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoid reports whether name is an HTML void element.
func IsVoid(name string) bool {
	return voidElements[name]
}

// optionalEnd lists elements whose end tag may be omitted, with the start
// tags that implicitly close them.
var optionalEnd = map[string][]string{
	"li":       {"li"},
	"dt":       {"dt", "dd"},
	"dd":       {"dt", "dd"},
	"p":        {"p"},
	"rt":       {"rt", "rp"},
	"rp":       {"rt", "rp"},
	"option":   {"option", "optgroup"},
	"optgroup": {"optgroup"},
	"colgroup": nil,
	"caption":  nil,
	"thead":    {"tbody", "tfoot"},
	"tbody":    {"tbody", "tfoot"},
	"tfoot":    nil,
	"tr":       {"tr"},
	"td":       {"td", "th", "tr"},
	"th":       {"td", "th", "tr"},
}

// parser holds the state of a single Parse call.
type parser struct {
	doc   *Document
	stack []*Element
}

// Parse parses template content into a Document.
//
// The parse is strict about structure: a closing tag with no matching open
// element, or an element left open at end of input, is a *ParseError. Only
// void elements, self-closing tags and elements with optional end tags may
// go without a closing tag.
func Parse(path string, content []byte) (*Document, error) {
	p := &parser{doc: &Document{Path: path, Content: content}}

	tokenizer := html.NewTokenizer(bytes.NewReader(content))
	offset := 0

	for {
		tokenType := tokenizer.Next()

		// Raw must be read before anything else touches the token buffer.
		raw := tokenizer.Raw()
		start := offset
		offset += len(raw)

		switch tokenType {
		case html.ErrorToken:
			if !errors.Is(tokenizer.Err(), io.EOF) {
				return nil, p.errorf(start, "tokenize: %v", tokenizer.Err())
			}
			if len(raw) > 0 {
				return nil, p.errorf(start, "unexpected end of input inside tag")
			}
			return p.finish(len(content))

		case html.StartTagToken, html.SelfClosingTagToken:
			p.startTag(raw, start, tokenType == html.SelfClosingTagToken)

		case html.EndTagToken:
			if err := p.endTag(raw, start); err != nil {
				return nil, err
			}

		case html.TextToken, html.CommentToken, html.DoctypeToken:
		}
	}
}

// MustParse is like Parse but panics on error. It is meant for tests.
func MustParse(content string) *Document {
	doc, err := Parse("", []byte(content))
	if err != nil {
		panic(err)
	}
	return doc
}

func (p *parser) top() *Element {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) startTag(raw []byte, start int, selfClosing bool) {
	el := scanStartTag(string(raw), start)
	el.Doc = p.doc
	el.SelfClosing = selfClosing

	// An open element with an optional end tag is closed by certain
	// following start tags.
	if top := p.top(); top != nil && closesImplicitly(top.Name, el.Name) {
		top.end = start
		p.stack = p.stack[:len(p.stack)-1]
	}

	if parent := p.top(); parent != nil {
		el.Parent = parent
		parent.Children = append(parent.Children, el)
	} else {
		p.doc.Roots = append(p.doc.Roots, el)
	}

	if selfClosing || IsVoid(el.Name) {
		el.end = el.StartTag.End
		return
	}
	p.stack = append(p.stack, el)
}

func (p *parser) endTag(raw []byte, start int) error {
	name := scanEndTagName(string(raw))
	if IsVoid(name) {
		return nil
	}

	idx := len(p.stack) - 1
	for ; idx >= 0; idx-- {
		if p.stack[idx].Name == name {
			break
		}
	}
	if idx < 0 {
		return p.errorf(start, "unexpected closing tag </%s>", name)
	}

	for _, open := range p.stack[idx+1:] {
		if _, ok := optionalEnd[open.Name]; !ok {
			return p.errorf(start, "unexpected closing tag </%s>: <%s> at offset %d is not closed",
				name, open.Name, open.StartTag.Start)
		}
		open.end = start
	}

	el := p.stack[idx]
	el.EndTag = &Span{Start: start, End: start + len(raw)}
	el.end = el.EndTag.End
	p.stack = p.stack[:idx]
	return nil
}

func (p *parser) finish(end int) (*Document, error) {
	for _, open := range p.stack {
		if _, ok := optionalEnd[open.Name]; !ok {
			return nil, p.errorf(open.StartTag.Start, "unclosed element <%s>", open.Name)
		}
		open.end = end
	}
	p.stack = nil
	return p.doc, nil
}

func (p *parser) errorf(offset int, format string, args ...any) *ParseError {
	line, col := p.doc.Position(offset)
	return &ParseError{
		Path:    p.doc.Path,
		Offset:  offset,
		Line:    line,
		Column:  col,
		Message: fmt.Sprintf(format, args...),
	}
}

func closesImplicitly(open, next string) bool {
	for _, name := range optionalEnd[open] {
		if name == next {
			return true
		}
	}
	return false
}
