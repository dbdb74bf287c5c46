package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/YLivay/minifixed/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() (table.Header, []table.Record) {
	sep := table.NewSeparator(" ")
	header := table.AnalyzeHeader("Column1 Column2    Column3", sep)
	records := []table.Record{
		table.SliceLine("simple1 la lala la 123    ", header, sep),
		table.SliceLine("simple2 lalala  la 123*321", header, sep),
	}
	return header, records
}

func TestLookup_KnownFormats(t *testing.T) {
	for _, name := range []string{"table", "json", "csv"} {
		f, err := Lookup(name)
		require.NoError(t, err)
		assert.EqualValues(t, name, f.Name())
	}
}

func TestLookup_UnknownFormat(t *testing.T) {
	_, err := Lookup("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), `"yaml"`)
}

func TestJSON_OneObjectPerLine(t *testing.T) {
	header, records := sampleData()

	var buf bytes.Buffer
	err := NewJSON().Format(header, records, &buf)
	assert.NoError(t, err)
	assert.EqualValues(t,
		`{"Column1":"simple1","Column2":"la lala la","Column3":"123"}`+"\n"+
			`{"Column1":"simple2","Column2":"lalala  la","Column3":"123*321"}`+"\n",
		buf.String())
}

func TestJSON_NoRecords(t *testing.T) {
	header, _ := sampleData()

	var buf bytes.Buffer
	assert.NoError(t, NewJSON().Format(header, nil, &buf))
	assert.Empty(t, buf.String())
}

func TestJSON_KeysFollowHeader(t *testing.T) {
	sep := table.NewSeparator(" ")
	header := table.AnalyzeHeader("zeta  alpha mid zeta", sep)
	records := []table.Record{table.SliceLine("z     a<&>  \"m\" last", header, sep)}

	var buf bytes.Buffer
	assert.NoError(t, NewJSON().Format(header, records, &buf))
	assert.EqualValues(t, `{"zeta":"last","alpha":"a<&>","mid":"\"m\""}`+"\n", buf.String())
}

func TestJSON_EmptyHeader(t *testing.T) {
	sep := table.NewSeparator(" ")
	header := table.AnalyzeHeader("   ", sep)
	records := []table.Record{table.SliceLine("data", header, sep)}

	var buf bytes.Buffer
	assert.NoError(t, NewJSON().Format(header, records, &buf))
	assert.EqualValues(t, "{}\n", buf.String())
}

func TestCSV_HeaderOrder(t *testing.T) {
	header, records := sampleData()

	var buf bytes.Buffer
	err := NewCSV().Format(header, records, &buf)
	assert.NoError(t, err)
	assert.EqualValues(t,
		"Column1,Column2,Column3\n"+
			"simple1,la lala la,123\n"+
			"simple2,lalala  la,123*321\n",
		buf.String())
}

func TestCSV_DuplicateColumnsCollapse(t *testing.T) {
	sep := table.NewSeparator(" ")
	header := table.AnalyzeHeader("x y x", sep)
	records := []table.Record{table.SliceLine("1 2 3", header, sep)}

	var buf bytes.Buffer
	assert.NoError(t, NewCSV().Format(header, records, &buf))
	assert.EqualValues(t, "x,y\n3,2\n", buf.String())
}

func TestTable_RendersAllCells(t *testing.T) {
	header, records := sampleData()

	var buf bytes.Buffer
	err := NewTable().Format(header, records, &buf)
	assert.NoError(t, err)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator and one line per record.
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Column1")
	assert.Contains(t, lines[0], "Column3")
	assert.Contains(t, lines[2], "la lala la")
	assert.Contains(t, lines[3], "123*321")
	assert.Contains(t, out, "│")
}
