// apps/solver/internal/cli/simulate.go
//
// Self-play simulation: the solver repeatedly guesses its own top-ranked
// candidate against a known answer, applying the feedback a real game would
// give. Useful for sanity-checking the heuristic and for benchmarking it
// over a whole dictionary.

package cli

import (
	"fmt"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// SimulateOptions holds options for the simulate command.
type SimulateOptions struct {
	All bool
}

// NewSimulateCommand creates the simulate command.
func NewSimulateCommand() *cobra.Command {
	opts := &SimulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate [word]",
		Short: "Replay the solver against a known answer",
		Long: `Play the solver against itself: at each step it guesses the top-ranked
candidate, scores that guess against the target word, and filters. Prints
every guess and how many candidates survived it.

With --all, every dictionary word is used as the target in turn and a
histogram of required guesses is printed instead.`,
		Example: `  # How would the solver find "crane"?
  solver simulate crane

  # Benchmark the heuristic over the whole dictionary
  solver simulate --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.All {
				return runSimulateAll(cmd)
			}
			if len(args) != 1 {
				return fmt.Errorf("need a target word (or --all)")
			}
			return runSimulate(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Simulate every dictionary word")

	return cmd
}

func runSimulate(cmd *cobra.Command, word string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	if len(word) != cfg.Length {
		return fmt.Errorf("wrong number of letters in %q, want %d", word, cfg.Length)
	}
	if !contains(dict, word) {
		return fmt.Errorf("%q is not in the dictionary", word)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%d words in dictionary\n", len(dict))

	steps := selfPlay(dict, cfg.Length, word)
	for i, s := range steps {
		_, _ = fmt.Fprintf(out, "  %d: guessing %s (%d candidates left)\n", i+1, s.guess, s.remaining)
	}
	_, _ = fmt.Fprintf(out, "%d guesses required\n", len(steps))
	return nil
}

func runSimulateAll(cmd *cobra.Command) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(len(dict)), "simulating")
	hist := make(map[int]int)
	total := 0
	worst := 0
	var worstWord string
	for _, w := range dict {
		n := len(selfPlay(dict, cfg.Length, w))
		hist[n]++
		total += n
		if n > worst {
			worst, worstWord = n, w
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	out := cmd.OutOrStdout()
	counts := make([]int, 0, len(hist))
	for n := range hist {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		_, _ = fmt.Fprintf(out, "%2d guesses: %d words\n", n, hist[n])
	}
	_, _ = fmt.Fprintf(out, "average %.2f guesses over %d words, worst %d (%s)\n",
		float64(total)/float64(len(dict)), len(dict), worst, worstWord)
	return nil
}

// step records one self-play guess and the candidate count after filtering.
type step struct {
	guess     string
	remaining int
}

// selfPlay runs the solver to completion against answer. The answer must be
// in dict, which guarantees termination: every wrong guess is eliminated by
// its own feedback while the answer always survives.
func selfPlay(dict []string, length int, answer string) []step {
	set := solver.New(dict, length)
	var steps []step
	for {
		guess := set.Rank()[0].Word
		if guess == answer {
			return append(steps, step{guess: guess, remaining: 1})
		}
		set.ApplyFeedback(feedback.Evaluate(answer, guess))
		steps = append(steps, step{guess: guess, remaining: set.Len()})
	}
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
