// apps/solver/internal/cli/solve.go
//
// The interactive solve loop. Each round shows the remaining candidates and
// their ranking, then reads one line of marked feedback. Parse errors are
// reported and the prompt repeats without touching the candidate set. The
// session ends when one candidate remains, none remain, or the user quits.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Interactively narrow down the answer",
		Long: `Start an interactive session against a puzzle you are playing elsewhere.

After every guess, type the guess back with each letter prefixed by the
tile color you were shown: green=*, yellow=?, gray=!.`,
		Example: `  # Default 5-letter session with the embedded dictionary
  solver solve

  # Guessed "irate", got a yellow i and a gray everything-else
  solver> ?i!r!a!t!e

  # 7-letter puzzle with your own word list
  solver solve --length 7 --dictionary /usr/share/dict/words`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd)
		},
	}
}

func runSolve(cmd *cobra.Command) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	set := solver.New(dict, cfg.Length)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "solver> ",
		HistoryFile:     filepath.Join(os.TempDir(), "wordle_solver_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, legend())
	_, _ = fmt.Fprintln(out)

	for {
		renderCandidates(out, set.Words(), cfg.Limit)
		renderRanking(out, set.Rank(), cfg.Limit)

		fb, quit, err := readFeedback(rl, cmd.ErrOrStderr(), cfg.Length)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		set.ApplyFeedback(fb)

		if set.Solved() {
			_, _ = fmt.Fprintln(out, solvedStyle.Render(fmt.Sprintf("The answer is %q.", set.Words()[0])))
			return nil
		}
		if set.Exhausted() {
			_, _ = fmt.Fprintln(out, failStyle.Render("No candidates left. Either some feedback was mistyped or the word is not in the dictionary."))
			return nil
		}
		_, _ = fmt.Fprintln(out)
	}
}

// readFeedback reads lines until one parses as feedback, the user quits
// (empty line or EOF), or reading fails. Parse errors are reported to errw
// and the prompt repeats.
func readFeedback(rl *readline.Instance, errw io.Writer, length int) (feedback.Feedback, bool, error) {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return feedback.Feedback{}, true, nil
		}
		if err != nil {
			return feedback.Feedback{}, false, err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return feedback.Feedback{}, true, nil
		}

		fb, err := feedback.Parse(line, length)
		if err != nil {
			_, _ = fmt.Fprintf(errw, "input error: %v\n", err)
			continue
		}
		return fb, false, nil
	}
}
