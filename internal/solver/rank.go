// apps/solver/internal/solver/rank.go
//
// Frequency-based candidate ranking.
//
// Letter frequencies are recomputed from the live candidate set on every
// Rank call, not taken from a static English table: as the set shrinks,
// the letters that best split the remaining words change with it.

package solver

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// RankedWord pairs a candidate with its heuristic score.
type RankedWord struct {
	Word  string
	Score float64
}

// Rank scores every remaining candidate and returns them sorted by
// descending score. A word scores the sum of the frequencies of its
// distinct letters, so repeated letters do not double-count. Ties keep
// dictionary order; repeated calls over an unchanged set return an
// identical ranking.
func (s *CandidateSet) Rank() []RankedWord {
	freq := s.letterFrequencies()
	ranked := make([]RankedWord, len(s.words))
	for i, w := range s.words {
		var seen [26]bool
		var score float64
		for j := 0; j < len(w); j++ {
			l := idx(w[j])
			if !seen[l] {
				seen[l] = true
				score += freq[l]
			}
		}
		ranked[i] = RankedWord{Word: w, Score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > 0 {
		log.Debug().
			Int("candidates", len(ranked)).
			Str("top", ranked[0].Word).
			Float64("score", ranked[0].Score).
			Msg("ranked candidates")
	}
	return ranked
}

// letterFrequencies computes, for each letter, the fraction of remaining
// candidates containing that letter at least once.
func (s *CandidateSet) letterFrequencies() [26]float64 {
	var freq [26]float64
	if len(s.words) == 0 {
		return freq
	}
	var counts [26]int
	for _, w := range s.words {
		var seen [26]bool
		for j := 0; j < len(w); j++ {
			l := idx(w[j])
			if !seen[l] {
				seen[l] = true
				counts[l]++
			}
		}
	}
	n := float64(len(s.words))
	for l, c := range counts {
		freq[l] = float64(c) / n
	}
	return freq
}
