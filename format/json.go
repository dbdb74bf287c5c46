package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/YLivay/minifixed/table"
)

var _ Formatter = (*JSON)(nil)

// JSON writes one object per line, keys in header order.
type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (jf *JSON) Name() string {
	return "json"
}

func (jf *JSON) Format(header table.Header, records []table.Record, writer io.Writer) error {
	names := header.Names()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Encode appends a newline after every value, which has to go inside an
	// object.
	encode := func(s string) error {
		if err := enc.Encode(s); err != nil {
			return err
		}
		buf.Truncate(buf.Len() - 1)
		return nil
	}

	for i, record := range records {
		buf.Reset()
		buf.WriteByte('{')
		for j, name := range names {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := encode(name); err != nil {
				return fmt.Errorf("failed to encode record %d: %w", i, err)
			}
			buf.WriteByte(':')
			if err := encode(record[name]); err != nil {
				return fmt.Errorf("failed to encode record %d: %w", i, err)
			}
		}
		buf.WriteString("}\n")

		if _, err := writer.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
