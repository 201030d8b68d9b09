// apps/solver/internal/cli/render.go
//
// Presentation helpers for candidate and ranking lists. Lists are truncated
// to the configured limit with an "and N more" suffix; the engine itself
// always returns full results.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

var (
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	grayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// legend explains the feedback markers.
func legend() string {
	return fmt.Sprintf("Mark each letter of your guess: %s %s %s (empty line quits)",
		greenStyle.Render("*=green"),
		yellowStyle.Render("?=yellow"),
		grayStyle.Render("!=gray"))
}

// renderCandidates prints the remaining candidates on one line, truncated.
func renderCandidates(w io.Writer, words []string, limit int) {
	shown := words
	if len(shown) > limit {
		shown = shown[:limit]
	}
	_, _ = fmt.Fprintf(w, "%d candidates: %s", len(words), strings.Join(shown, ", "))
	if rest := len(words) - len(shown); rest > 0 {
		_, _ = fmt.Fprintf(w, ", and %d more", rest)
	}
	_, _ = fmt.Fprintln(w)
}

// renderRanking prints the top of the ranking as a table.
func renderRanking(w io.Writer, ranked []solver.RankedWord, limit int) {
	shown := ranked
	if len(shown) > limit {
		shown = shown[:limit]
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "word", "score"})
	for i, r := range shown {
		t.AppendRow(table.Row{i + 1, r.Word, fmt.Sprintf("%.4f", r.Score)})
	}
	t.Render()
	if rest := len(ranked) - len(shown); rest > 0 {
		_, _ = fmt.Fprintf(w, "...and %d more\n", rest)
	}
}
