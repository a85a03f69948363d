package markup

import "sort"

// lineStarts returns the offset at which each line of content begins.
func lineStarts(content []byte) []int {
	starts := []int{0}
	for idx, char := range content {
		if char == '\n' {
			starts = append(starts, idx+1)
		}
	}
	return starts
}

// Position converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Offsets past the end are clamped to the
// end of the content.
func (d *Document) Position(offset int) (int, int) {
	if d.lines == nil {
		d.lines = lineStarts(d.Content)
	}
	offset = max(0, min(offset, len(d.Content)))

	lineIdx := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i] > offset
	}) - 1

	return lineIdx + 1, offset - d.lines[lineIdx] + 1
}

// LineStart returns the offset of the first byte of the line containing
// offset.
func (d *Document) LineStart(offset int) int {
	line, _ := d.Position(offset)
	return d.lines[line-1]
}
