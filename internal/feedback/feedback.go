// apps/solver/internal/feedback/feedback.go
//
// Core type definitions for guess feedback.
// Defines:
//   - Clue: per-letter result of a guess (green/yellow/gray).
//   - Feedback: the full set of clues for one submitted guess.

package feedback

import "strings"

// Clue represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the answer but in a different position.
//   - "gray":   no further occurrences of the letter exist in the answer.
type Clue string

const (
	ClueGreen  Clue = "green"
	ClueYellow Clue = "yellow"
	ClueGray   Clue = "gray"
)

// Marker returns the single-character input marker for the clue:
// green=*, yellow=?, gray=!.
func (c Clue) Marker() byte {
	switch c {
	case ClueGreen:
		return '*'
	case ClueYellow:
		return '?'
	default:
		return '!'
	}
}

// Feedback holds one round of clues for a submitted guess.
// The guess word is kept alongside the clues: a clue is meaningless
// without the letter it refers to.
type Feedback struct {
	Guess string // the guessed word, lowercased
	Clues []Clue // one clue per position of Guess
}

// Len reports the number of positions covered by the feedback.
func (f Feedback) Len() int { return len(f.Clues) }

// String renders the feedback in the marker grammar, e.g. "?i*r!a!t!e".
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(2 * len(f.Clues))
	for i, c := range f.Clues {
		b.WriteByte(c.Marker())
		b.WriteByte(f.Guess[i])
	}
	return b.String()
}

// idx maps a lowercase ASCII letter byte to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b - 'a') }
