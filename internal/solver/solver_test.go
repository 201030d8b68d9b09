package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

func mustParse(t *testing.T, line string, length int) feedback.Feedback {
	t.Helper()
	fb, err := feedback.Parse(line, length)
	require.NoError(t, err)
	return fb
}

func TestConsistent(t *testing.T) {
	t.Run("green requires exact position", func(t *testing.T) {
		fb := mustParse(t, "!i*r*a*t*e", 5)
		assert.True(t, Consistent("orate", fb))
		assert.True(t, Consistent("crate", fb))
		assert.False(t, Consistent("early", fb))
	})

	t.Run("yellow requires letter elsewhere", func(t *testing.T) {
		fb := mustParse(t, "?i!r!a!t!e", 5)
		// i present but not at position 0
		assert.True(t, Consistent("onion", fb))
		// i at the yellow position
		assert.False(t, Consistent("igloo", fb))
		// no i at all
		assert.False(t, Consistent("bloom", fb))
	})

	t.Run("gray excludes the letter entirely when unconfirmed", func(t *testing.T) {
		fb := mustParse(t, "!i*r*a*t*e", 5)
		assert.False(t, Consistent("irate", fb))
	})

	t.Run("gray caps duplicates at the confirmed count", func(t *testing.T) {
		// speed against an answer with a single e: first e yellow, second gray.
		fb := feedback.Evaluate("crane", "speed")
		require.Equal(t, "!s!p?e!e!d", fb.String())

		// exactly one e, not at the yellow position: still possible
		assert.True(t, Consistent("olive", fb))
		// two e's: ruled out by the gray cap, not by mere presence
		assert.False(t, Consistent("melee", fb))
		// no e at all: fails the confirmed lower bound
		assert.False(t, Consistent("chair", fb))
	})

	t.Run("yellow positional check applies to duplicates too", func(t *testing.T) {
		fb := feedback.Evaluate("crane", "speed")
		// one e, but sitting exactly where the yellow e was guessed
		assert.False(t, Consistent("query", fb))
	})

	t.Run("confirmed lower bound counts green and yellow together", func(t *testing.T) {
		// erase has two e's: both e's of speed come back yellow.
		fb := feedback.Evaluate("erase", "speed")
		require.Equal(t, "?s!p?e?e!d", fb.String())

		assert.True(t, Consistent("erase", fb))
		// only one e cannot satisfy two confirmed occurrences
		assert.False(t, Consistent("verso", fb))
	})

	t.Run("length mismatch is never consistent", func(t *testing.T) {
		fb := mustParse(t, "!i*r*a*t*e", 5)
		assert.False(t, Consistent("orates", fb))
	})
}

func TestApplyFeedback(t *testing.T) {
	dict := []string{"irate", "orate", "crate"}

	t.Run("end to end scenario", func(t *testing.T) {
		set := New(dict, 5)
		set.ApplyFeedback(mustParse(t, "!i*r*a*t*e", 5))
		assert.Equal(t, []string{"orate", "crate"}, set.Words())
		assert.False(t, set.Solved())
		assert.False(t, set.Exhausted())
	})

	t.Run("monotonic shrink and soundness", func(t *testing.T) {
		set := New(dict, 5)
		fb := mustParse(t, "!i*r*a*t*e", 5)
		before := append([]string(nil), set.Words()...)
		set.ApplyFeedback(fb)

		assert.LessOrEqual(t, set.Len(), len(before))
		kept := make(map[string]bool)
		for _, w := range set.Words() {
			assert.True(t, Consistent(w, fb), "kept word %q must be consistent", w)
			kept[w] = true
		}
		for _, w := range before {
			if !kept[w] {
				assert.False(t, Consistent(w, fb), "removed word %q must be inconsistent", w)
			}
		}
	})

	t.Run("idempotent under repetition", func(t *testing.T) {
		set := New(dict, 5)
		fb := mustParse(t, "!i*r*a*t*e", 5)
		set.ApplyFeedback(fb)
		once := append([]string(nil), set.Words()...)
		set.ApplyFeedback(fb)
		assert.Equal(t, once, set.Words())
	})

	t.Run("solved on single survivor", func(t *testing.T) {
		set := New(dict, 5)
		set.ApplyFeedback(mustParse(t, "!i*r*a*t*e", 5))
		set.ApplyFeedback(mustParse(t, "!c*r*a*t*e", 5))
		require.True(t, set.Solved())
		assert.Equal(t, []string{"orate"}, set.Words())
	})

	t.Run("exhausted on contradiction", func(t *testing.T) {
		set := New(dict, 5)
		// claim there is no r anywhere: nothing survives
		set.ApplyFeedback(mustParse(t, "!i!r!a!t!e", 5))
		assert.True(t, set.Exhausted())
		assert.Equal(t, 0, set.Len())
	})

	t.Run("initial set copies the dictionary", func(t *testing.T) {
		set := New(dict, 5)
		set.ApplyFeedback(mustParse(t, "!i!r!a!t!e", 5))
		assert.Equal(t, []string{"irate", "orate", "crate"}, dict)
	})
}
