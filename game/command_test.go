package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gridstorm/core"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line string
		want Command
	}{
		{"", Command{Verb: VerbNone}},
		{"   ", Command{Verb: VerbNone}},
		{"spawn", Command{Verb: VerbSpawn, Count: 1}},
		{"spawn 12", Command{Verb: VerbSpawn, Count: 12}},
		{"  spawn   3  ", Command{Verb: VerbSpawn, Count: 3}},
		{"kill 42", Command{Verb: VerbKill, ID: core.Entity(42)}},
		{"clear", Command{Verb: VerbClear}},
		{"quit", Command{Verb: VerbQuit}},
		{"q", Command{Verb: VerbQuit}},
	}

	for _, tc := range cases {
		got, err := ParseCommand(tc.line)
		require.NoError(t, err, "line %q", tc.line)
		require.Equal(t, tc.want, got, "line %q", tc.line)
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, line := range []string{
		"spawn zero",
		"spawn -1",
		"spawn 0",
		"kill",
		"kill abc",
		"kill -5",
		"teleport 3",
	} {
		_, err := ParseCommand(line)
		require.Error(t, err, "line %q", line)
	}
}
