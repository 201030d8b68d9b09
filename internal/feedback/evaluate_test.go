package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
		want   string
	}{
		{"all green", "crate", "crate", "*c*r*a*t*e"},
		{"all gray", "crate", "lousy", "!l!o!u!s!y"},
		{"green tail", "crate", "irate", "!i*r*a*t*e"},
		{"yellow letters", "crate", "caret", "*c?a?r?e?t"},
		// crate has a single e: the first e in speed gets the yellow,
		// the second goes gray rather than claiming a second occurrence.
		{"duplicate guess letter capped", "crane", "speed", "!s!p?e!e!d"},
		// erase has two e's, so both e's in speed stay yellow.
		{"duplicate guess letter satisfied", "erase", "speed", "?s!p?e?e!d"},
		// greens claim their occurrence before yellows are handed out.
		{"green claims before yellow", "abbey", "babes", "?b?a*b*e!s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.answer, tt.guess).String())
		})
	}
}
