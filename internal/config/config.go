// Package config reads runtime settings from the environment (optionally
// seeded from a .env file) with per-key fallbacks.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

type Config struct {
	ScoresFile string
	WordsFile  string

	AssetsDir      string
	FontFile       string
	FontSize       float64
	BackgroundFile string
	CorrectSound   string
	BlipSound      string
	MusicFile      string
	Mute           bool

	FPS int

	LogFile  string
	LogLevel zerolog.Level
}

const (
	DefaultFPS      = 60
	DefaultFontSize = 12
)

// Load builds a Config from the environment. Malformed values are reported on
// log and replaced by their defaults.
func Load(log zerolog.Logger) Config {
	e := env{log: log}

	cfg := Config{
		ScoresFile: e.str("SCORES_FILE", "scores.json"),
		WordsFile:  e.str("WORDS_FILE", ""),

		AssetsDir:      e.str("ASSETS_DIR", "."),
		FontFile:       e.str("FONT_FILE", "TechnoRaceItalic-eZRWe.otf"),
		FontSize:       e.float("FONT_SIZE", DefaultFontSize),
		BackgroundFile: e.str("BACKGROUND_FILE", "typing2.png"),
		CorrectSound:   e.str("CORRECT_SOUND_FILE", "correct2.wav"),
		BlipSound:      e.str("BLIP_SOUND_FILE", "blip2.wav"),
		MusicFile:      e.str("MUSIC_FILE", "theme_music.mp3"),
		Mute:           e.bool("MUTE", false),

		FPS: e.int("FPS", DefaultFPS),

		LogFile:  e.str("LOG_FILE", "typing-ninja.log"),
		LogLevel: e.level("LOG_LEVEL", zerolog.InfoLevel),
	}

	if cfg.FPS <= 0 {
		log.Warn().Int("fps", cfg.FPS).Msg("FPS must be positive, using default")
		cfg.FPS = DefaultFPS
	}
	if cfg.FontSize <= 0 {
		log.Warn().Float64("size", cfg.FontSize).Msg("FONT_SIZE must be positive, using default")
		cfg.FontSize = DefaultFontSize
	}
	return cfg
}

// Asset resolves an asset file name against AssetsDir. Absolute names are
// returned unchanged.
func (c Config) Asset(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.AssetsDir, name)
}

type env struct {
	log zerolog.Logger
}

func (e env) str(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e env) int(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		e.log.Warn().Str("key", key).Err(err).Int("default", fallback).Msg("invalid int, using default")
		return fallback
	}
	return i
}

func (e env) float(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		e.log.Warn().Str("key", key).Err(err).Float64("default", fallback).Msg("invalid number, using default")
		return fallback
	}
	return f
}

func (e env) bool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		e.log.Warn().Str("key", key).Err(err).Bool("default", fallback).Msg("invalid bool, using default")
		return fallback
	}
	return b
}

func (e env) level(key string, fallback zerolog.Level) zerolog.Level {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(val)))
	if err != nil {
		e.log.Warn().Str("key", key).Err(err).Str("default", fallback.String()).Msg("invalid log level, using default")
		return fallback
	}
	return lvl
}
