package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/levels"
)

func setPlayFlags(t *testing.T, difficulty, logFile string) {
	t.Helper()
	oldDifficulty, oldLog, oldConfig, oldLevels := flagDifficulty, flagLogFile, flagConfig, flagLevelsDir
	t.Cleanup(func() {
		flagDifficulty, flagLogFile, flagConfig, flagLevelsDir = oldDifficulty, oldLog, oldConfig, oldLevels
	})
	flagDifficulty = difficulty
	flagLogFile = logFile
	flagConfig = ""
	flagLevelsDir = ""
}

func TestPlayUnknownLevel(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	logFile := filepath.Join(dir, "play.log")
	setPlayFlags(t, "", logFile)

	err := play([]string{"no-such-level"})
	if !errors.Is(err, levels.ErrLevelNotFound) {
		t.Fatalf("play() error = %v, expected ErrLevelNotFound", err)
	}
	if _, statErr := os.Stat(logFile); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("log file should not be opened for an unknown level, stat error = %v", statErr)
	}
}

func TestPlayBadDifficulty(t *testing.T) {
	setPlayFlags(t, "insane", "")

	if err := play([]string{"01-classic"}); err == nil {
		t.Error("play() should return an error for an unknown difficulty")
	}
}
