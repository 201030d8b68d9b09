// apps/solver/internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Load a newline-delimited word list from a file, or fall back to the
//     embedded default list.
//   - Normalize to lowercase and enforce length homogeneity: every word in
//     a session has the same length L.
//
// Constraints:
//   • Words must be ASCII letters a–z only.
//   • A line whose word has the wrong length is rejected with an error
//     naming the line, never silently dropped. Deterministic and loud.
//   • Duplicate words keep their first occurrence; dictionary order is
//     preserved so display and tie-breaking stay stable.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

const embeddedLength = 5

var (
	ErrWrongLength = errors.New("word has the wrong length")
	ErrNotAlpha    = errors.New("word contains characters outside a-z")
	ErrEmpty       = errors.New("dictionary is empty")
)

// Load reads one word per line from path, lowercasing and trimming each
// line. Blank lines are skipped. Any word that is not exactly length
// letters a–z fails the load.
func Load(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" {
			continue
		}
		if !isAlpha(w) {
			return nil, fmt.Errorf("%s:%d: %w: %q", path, line, ErrNotAlpha, w)
		}
		if len(w) != length {
			return nil, fmt.Errorf("%s:%d: %w: %q has %d letters, want %d",
				path, line, ErrWrongLength, w, len(w), length)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return out, nil
}

// Default returns the embedded word list. Only the standard 5-letter list
// ships with the binary; other lengths need an explicit dictionary file.
func Default(length int) ([]string, error) {
	if length != embeddedLength {
		return nil, fmt.Errorf("no built-in dictionary for length %d, pass --dictionary", length)
	}
	var out []string
	for _, line := range strings.Split(embeddedWords, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) == embeddedLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("embedded dictionary: %w", ErrEmpty)
	}
	return out, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
