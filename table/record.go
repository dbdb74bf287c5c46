package table

import (
	"strings"

	"github.com/YLivay/minifixed/utils"
)

// Record maps column names to the text found under them.
type Record map[string]string

// Values returns the record's values in the order of names. Missing columns
// come back as empty strings.
func (r Record) Values(names []string) []string {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = r[name]
	}
	return values
}

// SliceLine cuts line at each span's offsets and strips the filler around
// every cell. Spans past the end of the line give empty cells. When two spans
// share a name the later one wins.
func SliceLine(line string, header Header, sep Separator) Record {
	chars := utils.Graphemes(line)
	record := make(Record, len(header))

	for _, span := range header {
		start := min(span.Start, len(chars))
		end := min(span.End, len(chars))
		record[span.Name] = strings.Join(sep.trimChars(chars[start:end]), "")
	}

	return record
}
