// Package filter selects records with jq expressions.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/YLivay/minifixed/table"
	"github.com/itchyny/gojq"
)

var ErrEmptyQuery = errors.New("empty query")

// Filter is a compiled jq expression evaluated against each record.
type Filter struct {
	expr string
	code *gojq.Code
}

func New(expr string) (*Filter, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, ErrEmptyQuery
	}

	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query %q: %w", expr, err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile query %q: %w", expr, err)
	}

	return &Filter{expr: expr, code: code}, nil
}

// String returns the expression the filter was built from.
func (f *Filter) String() string {
	return f.expr
}

// Match runs the expression with the record as input, an object of strings.
// The record matches when the first value produced is neither false nor null.
// An expression that produces nothing does not match.
func (f *Filter) Match(record table.Record) (bool, error) {
	input := make(map[string]any, len(record))
	for k, v := range record {
		input[k] = v
	}

	iter := f.code.Run(input)
	v, ok := iter.Next()
	if !ok {
		return false, nil
	}
	if err, ok := v.(error); ok {
		return false, fmt.Errorf("failed to evaluate query %q: %w", f.expr, err)
	}

	return v != nil && v != false, nil
}

// Apply returns the records that match, in order.
func (f *Filter) Apply(records []table.Record) ([]table.Record, error) {
	var matched []table.Record
	for i, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}
