package reader

import "io"

// LineReader pulls one line at a time from some source of text. Lines are
// returned without their terminator. ReadLine returns io.EOF once the source
// has no more lines.
type LineReader interface {
	ReadLine() (string, error)
}

// SliceLineReader serves lines from an in-memory slice.
type SliceLineReader struct {
	lines []string
	index int
}

func NewSliceLineReader(lines []string) *SliceLineReader {
	return &SliceLineReader{lines: lines}
}

func (r *SliceLineReader) ReadLine() (string, error) {
	if r.index >= len(r.lines) {
		return "", io.EOF
	}

	line := r.lines[r.index]
	r.index++
	return line, nil
}

// Remaining returns the number of unread lines.
func (r *SliceLineReader) Remaining() int {
	return len(r.lines) - r.index
}
