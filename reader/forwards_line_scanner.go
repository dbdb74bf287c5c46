package reader

import (
	"bufio"
	"bytes"
	"io"
)

var _ LineReader = (*ForwardsLineScanner)(nil)

// ForwardsLineScanner reads an io.Reader line by line.
type ForwardsLineScanner struct {
	*bufio.Scanner
}

func NewForwardsLineScanner(reader io.Reader) *ForwardsLineScanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanLines)
	return &ForwardsLineScanner{Scanner: scanner}
}

// ReadLine returns the next line, io.EOF at the end of the input, or whatever
// error the underlying reader failed with.
func (s *ForwardsLineScanner) ReadLine() (string, error) {
	if s.Scan() {
		return s.Text(), nil
	}

	if err := s.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// Modified from bufio.ScanLines to only drop a carriage return when it is part
// of a "\r\n" terminator. A carriage return elsewhere in the line is data.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		// We have a full newline-terminated line.
		return i + 1, dropCR(data[0:i]), nil
	}
	// If we're at EOF, we have a final, non-terminated line. Return it.
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}

// dropCR drops a terminal \r from the data.
func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1]
	}
	return data
}
