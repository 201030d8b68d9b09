// apps/solver/internal/feedback/parse.go
//
// Parses a marked feedback line into a Feedback value.
//
// Input grammar: a sequence of exactly L two-character groups, each
// <marker><letter>, marker ∈ {*, ?, !}, letter ∈ a–z (case-insensitive).
// Whitespace between groups is ignored. Example for L=5: "?i*r!a!t!e".
//
// All errors returned here are input errors: the caller reports them and
// re-prompts, nothing is fatal to the session.

package feedback

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMarker  = errors.New("unknown marker, expected one of * ? !")
	ErrDanglingMarker = errors.New("marker without a letter")
	ErrNotALetter     = errors.New("expected a letter a-z")
	ErrTooManyGroups  = errors.New("too many letters in input")
	ErrTooFewGroups   = errors.New("too few letters in input")
)

// Parse reads a marked feedback line and returns the Feedback it encodes.
// length is the fixed word length L for the session; a line encoding more
// or fewer than length groups is rejected.
func Parse(line string, length int) (Feedback, error) {
	var (
		guess  []byte
		clues  []Clue
		marker byte
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == ' ' || ch == '\t' {
			continue
		}
		if marker == 0 {
			marker = ch
			continue
		}
		if len(clues) == length {
			return Feedback{}, ErrTooManyGroups
		}
		letter, ok := foldLetter(ch)
		if !ok {
			return Feedback{}, fmt.Errorf("%w, got %q", ErrNotALetter, string(ch))
		}
		var clue Clue
		switch marker {
		case '*':
			clue = ClueGreen
		case '?':
			clue = ClueYellow
		case '!':
			clue = ClueGray
		default:
			return Feedback{}, fmt.Errorf("%w, got %q", ErrUnknownMarker, string(marker))
		}
		guess = append(guess, letter)
		clues = append(clues, clue)
		marker = 0
	}
	if marker != 0 {
		return Feedback{}, fmt.Errorf("%w: %q", ErrDanglingMarker, string(marker))
	}
	if len(clues) < length {
		return Feedback{}, fmt.Errorf("%w: got %d, want %d", ErrTooFewGroups, len(clues), length)
	}
	return Feedback{Guess: string(guess), Clues: clues}, nil
}

// foldLetter lowercases an ASCII letter, reporting whether b was a letter.
func foldLetter(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b, true
	case b >= 'A' && b <= 'Z':
		return b + ('a' - 'A'), true
	default:
		return 0, false
	}
}
