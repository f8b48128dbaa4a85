package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func newLogger(w io.Writer, development bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(w, nil)
	if development {
		handler = tint.NewHandler(w, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

// setupEngineLog routes the engine's traces. Without a log file they are
// only shown in development.
func setupEngineLog(development bool, logFile string) error {
	mines.Log.SetLevel(logrus.InfoLevel)
	mines.Log.SetOutput(io.Discard)
	if development {
		mines.Log.SetLevel(logrus.DebugLevel)
		mines.Log.SetOutput(os.Stderr)
		mines.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if logFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", logFile, err)
	}
	mines.Log.SetLevel(logrus.DebugLevel)
	mines.Log.AddHook(hook)
	return nil
}
