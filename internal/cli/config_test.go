package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "", got.Dictionary)
		assert.Equal(t, defaultLength, got.Length)
		assert.Equal(t, defaultLimit, got.Limit)
		assert.False(t, got.Verbose)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("SOLVER_LENGTH", "7")
		t.Setenv("SOLVER_DICTIONARY", "/tmp/words.txt")
		got, err := loadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Length)
		assert.Equal(t, "/tmp/words.txt", got.Dictionary)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("SOLVER_LENGTH", "7")
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Int("length", defaultLength, "")
		flags.Int("limit", defaultLimit, "")
		require.NoError(t, flags.Parse([]string{"--length", "6"}))

		got, err := loadConfig(flags)
		require.NoError(t, err)
		assert.Equal(t, 6, got.Length)
	})

	t.Run("rejects nonsense values", func(t *testing.T) {
		t.Setenv("SOLVER_LENGTH", "0")
		_, err := loadConfig(nil)
		assert.Error(t, err)
	})
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "solver", cmd.Use)
	for _, flag := range []string{"dictionary", "length", "limit", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["solve"])
	assert.True(t, names["simulate"])
	assert.True(t, names["version"])
}
