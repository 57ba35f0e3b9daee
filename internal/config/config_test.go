package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"SCORES_FILE", "WORDS_FILE", "ASSETS_DIR", "FONT_FILE", "FONT_SIZE", "FPS", "MUTE", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load(zerolog.Nop())

	if cfg.ScoresFile != "scores.json" {
		t.Errorf("ScoresFile = %q", cfg.ScoresFile)
	}
	if cfg.WordsFile != "" {
		t.Errorf("WordsFile = %q, want empty", cfg.WordsFile)
	}
	if cfg.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.FPS)
	}
	if cfg.FontSize != 12 {
		t.Errorf("FontSize = %v, want 12", cfg.FontSize)
	}
	if cfg.Mute {
		t.Error("Mute should default to false")
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.FontFile != "TechnoRaceItalic-eZRWe.otf" || cfg.BackgroundFile != "typing2.png" {
		t.Errorf("unexpected asset defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SCORES_FILE", "/tmp/s.json")
	t.Setenv("FPS", "30")
	t.Setenv("FONT_SIZE", "18.5")
	t.Setenv("MUTE", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load(zerolog.Nop())
	if cfg.ScoresFile != "/tmp/s.json" || cfg.FPS != 30 || cfg.FontSize != 18.5 || !cfg.Mute {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("FPS", "fast")
	t.Setenv("FONT_SIZE", "-3")
	t.Setenv("MUTE", "perhaps")
	t.Setenv("LOG_LEVEL", "loud")

	var buf bytes.Buffer
	cfg := Load(zerolog.New(&buf))

	if cfg.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want default", cfg.FPS)
	}
	if cfg.FontSize != DefaultFontSize {
		t.Errorf("FontSize = %v, want default", cfg.FontSize)
	}
	if cfg.Mute {
		t.Error("Mute should fall back to false")
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	for _, key := range []string{"FPS", "MUTE", "LOG_LEVEL"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("expected a warning mentioning %s, log was %s", key, buf.String())
		}
	}
}

func TestLoadNonPositiveFPS(t *testing.T) {
	t.Setenv("FPS", "0")
	if cfg := Load(zerolog.Nop()); cfg.FPS != DefaultFPS {
		t.Errorf("FPS = %d, want default", cfg.FPS)
	}
}

func TestAsset(t *testing.T) {
	cfg := Config{AssetsDir: "assets"}
	if got := cfg.Asset("a.png"); got != filepath.Join("assets", "a.png") {
		t.Errorf("Asset(a.png) = %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "x", "b.png")
	if got := cfg.Asset(abs); got != abs {
		t.Errorf("Asset(%q) = %q", abs, got)
	}
	if got := cfg.Asset(""); got != "" {
		t.Errorf("Asset(\"\") = %q", got)
	}
}
