// apps/solver/internal/solver/solver.go
//
// Candidate engine for a single solving session.
// Responsibilities:
//   - Own the working candidate set (dictionary-ordered, shrinks only).
//   - Apply one round of feedback, pruning inconsistent words.
//   - Expose the consistency predicate used for pruning.
//
// Notes:
//   - The set is created once per session from the dictionary and mutated
//     only by ApplyFeedback. An empty result is a valid outcome (the user
//     supplied contradictory feedback), not an error.
//   - Words and guesses are lowercase a–z of one fixed length; the words
//     package enforces that on load.

package solver

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

// CandidateSet holds the words still consistent with every feedback applied
// so far, in dictionary order.
type CandidateSet struct {
	length int
	words  []string
}

// New constructs a candidate set over a length-homogeneous dictionary.
func New(dictionary []string, length int) *CandidateSet {
	words := make([]string, len(dictionary))
	copy(words, dictionary)
	return &CandidateSet{length: length, words: words}
}

// Len reports the number of remaining candidates.
func (s *CandidateSet) Len() int { return len(s.words) }

// Length reports the fixed word length L for the session.
func (s *CandidateSet) Length() int { return s.length }

// Words returns the remaining candidates in dictionary order.
// The returned slice is owned by the set; callers must not modify it.
func (s *CandidateSet) Words() []string { return s.words }

// Solved reports whether exactly one candidate remains.
func (s *CandidateSet) Solved() bool { return len(s.words) == 1 }

// Exhausted reports whether no candidates remain.
func (s *CandidateSet) Exhausted() bool { return len(s.words) == 0 }

// ApplyFeedback prunes the set to the words consistent with fb.
// The set never grows; applying the same feedback twice is a no-op.
func (s *CandidateSet) ApplyFeedback(fb feedback.Feedback) {
	before := len(s.words)
	kept := s.words[:0]
	for _, w := range s.words {
		if Consistent(w, fb) {
			kept = append(kept, w)
		} else {
			log.Debug().Str("word", w).Str("feedback", fb.String()).Msg("eliminated")
		}
	}
	s.words = kept
	log.Debug().
		Str("guess", fb.Guess).
		Int("before", before).
		Int("after", len(s.words)).
		Msg("applied feedback")
}

// Consistent reports whether word could still be the answer given fb.
//
// Positional rules:
//   - green at i:  word[i] must equal fb.Guess[i].
//   - yellow at i: word[i] must differ from fb.Guess[i], and the letter must
//     occur somewhere in word.
//
// Per-letter occurrence bounds (the duplicate-letter rule):
//   - the letter must occur at least as many times in word as it was marked
//     green or yellow in the guess;
//   - if any occurrence of the letter was marked gray, it must occur exactly
//     that many times. Gray does not mean zero occurrences.
func Consistent(word string, fb feedback.Feedback) bool {
	if len(word) != len(fb.Guess) {
		return false
	}

	var inWord [26]int
	for i := 0; i < len(word); i++ {
		inWord[idx(word[i])]++
	}

	// confirmed counts green+yellow occurrences per guess letter; grayed
	// records whether any occurrence of the letter was marked gray.
	var inGuess, confirmed [26]int
	var grayed [26]bool

	for i, clue := range fb.Clues {
		g := fb.Guess[i]
		j := idx(g)
		inGuess[j]++
		switch clue {
		case feedback.ClueGreen:
			if word[i] != g {
				return false
			}
			confirmed[j]++
		case feedback.ClueYellow:
			if word[i] == g {
				return false
			}
			if inWord[j] == 0 {
				return false
			}
			confirmed[j]++
		case feedback.ClueGray:
			grayed[j] = true
		}
	}

	for j := 0; j < 26; j++ {
		if inGuess[j] == 0 {
			continue
		}
		if inWord[j] < confirmed[j] {
			return false
		}
		if grayed[j] && inWord[j] > confirmed[j] {
			return false
		}
	}
	return true
}

// idx maps a lowercase ASCII letter byte to 0..25.
func idx(b byte) int { return int(b - 'a') }
