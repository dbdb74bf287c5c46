package table

import (
	"strings"

	"github.com/YLivay/minifixed/utils"
)

// HeaderSpan is one column inferred from the header line. Start and End are
// character offsets and cover the column name plus the filler that follows
// it, so a data cell may be wider than its name.
type HeaderSpan struct {
	Name  string
	Start int
	End   int
}

// Header is the ordered list of column spans, left to right.
type Header []HeaderSpan

// Names returns the column names in order of first appearance. A name that
// appears more than once is only listed the first time.
func (h Header) Names() []string {
	names := make([]string, 0, len(h))
	seen := make(map[string]struct{}, len(h))
	for _, span := range h {
		if _, ok := seen[span.Name]; ok {
			continue
		}
		seen[span.Name] = struct{}{}
		names = append(names, span.Name)
	}
	return names
}

// AnalyzeHeader finds every run of non-filler characters in line, together
// with the filler trailing it, and turns each one into a span. Filler before
// the first run is skipped. A line feed is neither name nor filler, so a
// header that still carries its terminator ends cleanly.
func AnalyzeHeader(line string, sep Separator) Header {
	chars := utils.Graphemes(line)
	header := Header{}

	isName := func(ch string) bool {
		return !sep.Contains(ch) && !isLineFeed(ch)
	}

	i := 0
	for i < len(chars) {
		if !isName(chars[i]) {
			i++
			continue
		}

		start := i
		for i < len(chars) && isName(chars[i]) {
			i++
		}
		nameEnd := i
		for i < len(chars) && sep.Contains(chars[i]) {
			i++
		}

		header = append(header, HeaderSpan{
			Name:  strings.Join(chars[start:nameEnd], ""),
			Start: start,
			End:   i,
		})
	}

	return header
}

func isLineFeed(ch string) bool {
	return ch == "\n" || ch == "\r\n"
}
