package format

import (
	"io"

	"github.com/YLivay/minifixed/table"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var _ Formatter = (*Table)(nil)

type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Name() string {
	return "table"
}

func (tf *Table) Format(header table.Header, records []table.Record, writer io.Writer) error {
	names := header.Names()

	var tableHeaders prettytable.Row
	for _, name := range names {
		tableHeaders = append(tableHeaders, name)
	}

	var tableRows []prettytable.Row
	for _, record := range records {
		var row prettytable.Row
		for _, value := range record.Values(names) {
			row = append(row, value)
		}
		tableRows = append(tableRows, row)
	}

	t := prettytable.NewWriter()
	t.AppendHeader(tableHeaders)
	t.AppendRows(tableRows)
	t.SetStyle(prettytable.StyleLight)
	t.Style().Format = prettytable.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false
	render := t.Render()

	_, err := io.WriteString(writer, render+"\n")
	return err
}
