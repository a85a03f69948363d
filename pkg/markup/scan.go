package markup

// The tokenizer lowercases names and drops attribute offsets, so tags are
// re-scanned from their raw text to recover both. The rules follow the
// tokenizer's own attribute state machine, so the two agree on where each
// attribute starts and ends.

func isSpace(c byte) bool {
	switch c {
	case ' ', '\n', '\r', '\t', '\f':
		return true
	default:
		return false
	}
}

// scanStartTag builds an element from the raw text of a start tag that
// begins at offset base.
func scanStartTag(raw string, base int) *Element {
	el := &Element{StartTag: Span{Start: base, End: base + len(raw)}}

	pos := 1
	for pos < len(raw) && !isSpace(raw[pos]) && raw[pos] != '/' && raw[pos] != '>' {
		pos++
	}
	el.Name = raw[1:pos]

	for {
		for pos < len(raw) && (isSpace(raw[pos]) || raw[pos] == '/') {
			pos++
		}
		if pos >= len(raw) || raw[pos] == '>' {
			break
		}

		attr, next := scanAttribute(raw, pos, base)
		el.Attrs = append(el.Attrs, attr)
		pos = next
	}

	return el
}

// scanAttribute scans one attribute starting at pos and returns it with the
// position just past it.
func scanAttribute(raw string, pos, base int) (*Attribute, int) {
	nameStart := pos

	// A leading '=' is part of the name.
	pos++
	for pos < len(raw) && !isSpace(raw[pos]) && raw[pos] != '/' && raw[pos] != '>' && raw[pos] != '=' {
		pos++
	}
	nameEnd := pos

	attr := &Attribute{
		Name:     raw[nameStart:nameEnd],
		NameSpan: Span{Start: base + nameStart, End: base + nameEnd},
	}

	afterName := pos
	for pos < len(raw) && isSpace(raw[pos]) {
		pos++
	}
	if pos >= len(raw) || raw[pos] != '=' {
		attr.Span = Span{Start: base + nameStart, End: base + nameEnd}
		attr.ValueSpan = Span{Start: base + nameEnd, End: base + nameEnd}
		return attr, afterName
	}

	pos++
	for pos < len(raw) && isSpace(raw[pos]) {
		pos++
	}

	attr.HasValue = true
	var valueStart, valueEnd int

	switch {
	case pos < len(raw) && (raw[pos] == '"' || raw[pos] == '\''):
		attr.Quote = raw[pos]
		pos++
		valueStart = pos
		for pos < len(raw) && raw[pos] != attr.Quote {
			pos++
		}
		valueEnd = pos
		if pos < len(raw) {
			pos++
		}
	default:
		valueStart = pos
		for pos < len(raw) && !isSpace(raw[pos]) && raw[pos] != '>' {
			pos++
		}
		valueEnd = pos
	}

	attr.Value = raw[valueStart:valueEnd]
	attr.ValueSpan = Span{Start: base + valueStart, End: base + valueEnd}
	attr.Span = Span{Start: base + nameStart, End: base + pos}
	return attr, pos
}

// scanEndTagName returns the tag name of a raw end tag.
func scanEndTagName(raw string) string {
	pos := 2
	for pos < len(raw) && !isSpace(raw[pos]) && raw[pos] != '/' && raw[pos] != '>' {
		pos++
	}
	return raw[2:pos]
}
