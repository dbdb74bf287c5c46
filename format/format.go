package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/YLivay/minifixed/table"
)

var ErrUnknownFormat = errors.New("unknown format")

// Formatter writes records out in some output format. Columns follow the
// header's order.
type Formatter interface {
	Name() string
	Format(header table.Header, records []table.Record, writer io.Writer) error
}

// Lookup returns the formatter registered under name.
func Lookup(name string) (Formatter, error) {
	for _, f := range All() {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// All returns every available formatter.
func All() []Formatter {
	return []Formatter{NewTable(), NewJSON(), NewCSV()}
}
