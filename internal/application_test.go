package application

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunApp(t *testing.T) {
	t.Run("Self-play without cache", func(t *testing.T) {
		// Given: a config with the cache disabled
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
		conf := &config.Config{Mode: config.ModeSelfPlay, Position: "X...O...."}

		// When: running the app
		err := RunApp(logger, conf)

		// Then: the game is played to the end and tagged with the run id
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Game over")
		assert.Contains(t, buf.String(), `"run_id"`)
	})

	t.Run("Solve without cache", func(t *testing.T) {
		// Given: a config solving a mid-game position
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
		conf := &config.Config{Mode: config.ModeSolve, Position: "XX./OO./..."}

		// When: running the app
		err := RunApp(logger, conf)

		// Then: the solved position is logged
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Position solved")
	})

	t.Run("Invalid position", func(t *testing.T) {
		// Given: a config with a malformed position
		conf := &config.Config{Mode: config.ModeSolve, Position: "XX"}

		// When: running the app
		err := RunApp(discardLogger(), conf)

		// Then: ErrInvalidBoard is returned
		require.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Cache enabled without redis host", func(t *testing.T) {
		// Given: a config enabling the cache with no redis host
		conf := &config.Config{
			Mode:     config.ModeSolve,
			Position: ".........",
			Cache:    config.Cache{Enabled: true},
		}

		// When: running the app
		err := RunApp(discardLogger(), conf)

		// Then: ErrAddrNotFound is returned
		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
