// apps/solver/internal/feedback/evaluate.go
//
// Evaluates a guess against a known answer, producing the feedback a real
// game would display. Used by the simulation mode, where the solver plays
// both sides.

package feedback

// Evaluate scores guess against answer using the standard two-pass
// algorithm.
//
// Pass 1:
//   - Mark exact matches green.
//   - Count remaining (non-green) answer letters by letter index.
//
// Pass 2:
//   - For each non-green guess letter: if there is remaining count for that
//     letter, mark yellow and decrement the count; otherwise mark gray.
//
// This ensures correct behavior with repeated letters in both answer and
// guess. Both words must be lowercase a–z and of equal length.
func Evaluate(answer, guess string) Feedback {
	n := len(guess)
	clues := make([]Clue, n)

	// Letter frequency for the non-green positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			clues[i] = ClueGreen
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if clues[i] == ClueGreen {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			clues[i] = ClueYellow
			counts[j]--
		} else {
			clues[i] = ClueGray
		}
	}
	return Feedback{Guess: guess, Clues: clues}
}
