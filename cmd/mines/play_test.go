package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestMain(m *testing.M) {
	mines.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	mines.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestPlayParams(t *testing.T) {
	p, err := playParams("expert", "")
	require.NoError(t, err)
	assert.Equal(t, mines.Expert, p)

	p, err = playParams("expert", "5:4:3")
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 5, Height: 4, MineCount: 3}, p)

	_, err = playParams("nightmare", "")
	assert.Error(t, err)

	_, err = playParams("", "5:4:30")
	assert.ErrorIs(t, err, mines.ErrTooManyMines)
}

func TestPlay(t *testing.T) {
	g, err := mines.NewGame(mines.Beginner, nil)
	require.NoError(t, err)

	in := strings.NewReader("help\nbogus\no 4 4\n\nf 99 0\nq\no 0 0\n")
	var out bytes.Buffer
	require.NoError(t, play(context.Background(), in, &out, g))

	text := out.String()
	assert.Contains(t, text, "9:9:10  [ready]")
	assert.Contains(t, text, "unknown command")
	assert.Contains(t, text, "invalid square coordinates")
	assert.NotEqual(t, mines.Ready, g.Phase)
	assert.True(t, g.Board[40].Revealed)
}

func TestPlayEndsWithInput(t *testing.T) {
	g, err := mines.NewGame(mines.Beginner, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, play(context.Background(), strings.NewReader("g"), &out, g))
	assert.Equal(t, mines.Ready, g.Phase)
	assert.Equal(t, 2, strings.Count(out.String(), "[ready]"))
}

func TestSetupEngineLog(t *testing.T) {
	path := t.TempDir() + "/engine.log"
	require.NoError(t, setupEngineLog(false, path))
	t.Cleanup(func() {
		mines.Log.ReplaceHooks(make(logrus.LevelHooks))
		mines.Log.SetOutput(io.Discard)
	})

	mines.Log.Debug("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestDevFlagDefaultsFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"yes", true},
		{"1", true},
		{"0", false},
		{"false", false},
	}
	for _, test := range tests {
		t.Setenv("DEVELOPMENT", test.env)

		var got bool
		cmd := newRootCommand()
		cmd.Commands = append(cmd.Commands, &cli.Command{
			Name: "check",
			Action: func(ctx context.Context, c *cli.Command) error {
				got = c.Bool("dev")
				return nil
			},
		})
		require.NoError(t, cmd.Run(context.Background(), []string{"mines", "check"}), test.env)
		assert.Equal(t, test.want, got, test.env)
	}
}
