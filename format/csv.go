package format

import (
	"encoding/csv"
	"io"

	"github.com/YLivay/minifixed/table"
)

var _ Formatter = (*CSV)(nil)

type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

func (cf *CSV) Name() string {
	return "csv"
}

func (cf *CSV) Format(header table.Header, records []table.Record, writer io.Writer) error {
	names := header.Names()

	data := make([][]string, 0, len(records)+1)
	data = append(data, names)
	for _, record := range records {
		data = append(data, record.Values(names))
	}

	w := csv.NewWriter(writer)
	if err := w.WriteAll(data); err != nil {
		return err
	}
	return w.Error()
}
