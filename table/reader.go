package table

import (
	"errors"
	"io"
	"iter"

	"github.com/YLivay/minifixed/log"
	"github.com/YLivay/minifixed/reader"
)

type readerState int

const (
	// No header has been read yet.
	stateUninitialized readerState = iota
	// The header is known and records are being produced.
	stateActive
	// The line source ran out. Terminal.
	stateExhausted
)

// Reader turns a source of fixed-width lines into records. The first line is
// the header; its column offsets are used for every line after it.
//
// A Reader is meant for a single consumer and does no locking.
type Reader struct {
	lines  reader.LineReader
	sep    Separator
	header Header
	state  readerState
}

// NewReader creates a Reader over lines. An empty separator means
// DefaultSeparator.
func NewReader(lines reader.LineReader, separator string) *Reader {
	return &Reader{
		lines: lines,
		sep:   NewSeparator(separator),
		state: stateUninitialized,
	}
}

// Separator returns the filler set the reader strips.
func (r *Reader) Separator() Separator {
	return r.sep
}

// Header returns the header and whether it has been read yet. A header line
// with no columns still counts as read.
func (r *Reader) Header() (Header, bool) {
	return r.header, r.state != stateUninitialized
}

// Read returns the next record. The first call also consumes the header line.
//
// io.EOF is returned when there are no more lines, whether that happens while
// looking for the header or for a data line. Errors from the line source,
// io.EOF included, are returned as is. Once a data read has hit io.EOF every
// later call returns io.EOF. Any other error leaves the reader where it was.
func (r *Reader) Read() (Record, error) {
	switch r.state {
	case stateExhausted:
		return nil, io.EOF

	case stateUninitialized:
		line, err := r.lines.ReadLine()
		if err != nil {
			return nil, err
		}

		r.header = AnalyzeHeader(line, r.sep)
		r.state = stateActive
		log.Debugf("header has %d columns: %q", len(r.header), r.header.Names())
	}

	line, err := r.lines.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.state = stateExhausted
			log.Debugf("input exhausted")
		}
		return nil, err
	}

	return SliceLine(line, r.header, r.sep), nil
}

// ReadAll reads the remaining records. Reaching the end of the input is not an
// error.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for record, err := range r.All() {
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
	return records, nil
}

// All iterates over the remaining records. It stops quietly at the end of the
// input and yields a nil record with the error on any other failure.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			record, err := r.Read()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(nil, err)
				}
				return
			}

			if !yield(record, nil) {
				return
			}
		}
	}
}
