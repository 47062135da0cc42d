package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerInvalidLevel(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("newLogger() with an unknown level should fail")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.log")

	logger, closer, err := newLogger(path, "info")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("hidden")
	logger.Info("game over", "score", 1200)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "game over") || !strings.Contains(out, "score=1200") {
		t.Errorf("log file missing entry: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry written at info level")
	}
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagConfig, flagDifficulty = "", "hard"
	defer func() { flagDifficulty = "" }()

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.preset != "hard" || cfg.Timing.InitialDropMs != 500 {
		t.Errorf("preset=%s initial=%d, expected hard and 500", cfg.preset, cfg.Timing.InitialDropMs)
	}

	flagDifficulty = "impossible"
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() should reject an unknown difficulty")
	}
}
