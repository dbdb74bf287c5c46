package utils

import (
	"github.com/rivo/uniseg"
)

// stepState is based off of rivo/tview's strings.go:stepState struct without
// the styling, tag parsing and line breaking logic.
// https://github.com/rivo/tview/blob/8a0aeb0aa377d2009202dc3111f17f13cd9f22ce/strings.go
type stepState struct {
	unisegState int
	boundaries  int
}

// step returns the next grapheme cluster of str and the remaining string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{
			unisegState: -1,
		}
	}
	if len(str) == 0 {
		newState = state
		return
	}

	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	newState = state
	return
}

// Graphemes splits text into user-perceived characters. Column offsets are
// counted in these units, so "e" followed by a combining accent occupies a
// single position.
func Graphemes(text string) []string {
	chars := make([]string, 0, len(text))

	var (
		cluster string
		state   *stepState
	)
	str := text
	for len(str) > 0 {
		cluster, str, state = step(str, state)
		chars = append(chars, cluster)
	}

	return chars
}
