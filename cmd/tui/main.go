package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jfosburgh/typing-ninja/internal/assets"
	"github.com/jfosburgh/typing-ninja/internal/config"
	"github.com/jfosburgh/typing-ninja/internal/models"
	"github.com/jfosburgh/typing-ninja/internal/scores"
	"github.com/jfosburgh/typing-ninja/internal/words"
)

func main() {
	_ = godotenv.Load()

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	boot := zerolog.New(console).With().Timestamp().Logger()

	cfg := config.Load(boot)
	flag.StringVar(&cfg.ScoresFile, "scores", cfg.ScoresFile, "path of the score log")
	flag.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "JSON file overriding the built-in word lists")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound effects and music")
	flag.Parse()

	// Once the alt screen is up, stderr is off limits; the game logs to a file.
	var out io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			boot.Warn().Err(err).Str("file", cfg.LogFile).Msg("could not open log file, logging disabled")
		} else {
			defer f.Close()
			out = f
		}
	}
	log := zerolog.New(out).Level(cfg.LogLevel).With().Timestamp().Logger()
	boot = zerolog.New(zerolog.MultiLevelWriter(console, out)).Level(cfg.LogLevel).With().Timestamp().Logger()

	source := words.Embedded()
	if cfg.WordsFile != "" {
		s, err := words.Load(cfg.WordsFile)
		if err != nil {
			boot.Warn().Err(err).Str("file", cfg.WordsFile).Msg("could not load word lists, using built-in words")
		} else {
			source = s
		}
	}

	env := &models.Env{
		Words:  source,
		Scores: scores.New(cfg.ScoresFile, scores.WithLogger(log)),
		Assets: assets.Load(assets.Paths{
			Font:         cfg.Asset(cfg.FontFile),
			FontSize:     cfg.FontSize,
			Background:   cfg.Asset(cfg.BackgroundFile),
			CorrectSound: cfg.Asset(cfg.CorrectSound),
			BlipSound:    cfg.Asset(cfg.BlipSound),
			Music:        cfg.Asset(cfg.MusicFile),
			Mute:         cfg.Mute,
		}, boot),
		Log: log,
		FPS: cfg.FPS,
	}

	p := tea.NewProgram(
		models.NewGame(env),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithFPS(cfg.FPS),
	)

	log.Info().Str("scores", cfg.ScoresFile).Int("fps", cfg.FPS).Msg("starting typing ninja")
	_, err := p.Run()
	if cerr := env.Close(); cerr != nil {
		log.Warn().Err(cerr).Msg("audio shutdown failed")
	}
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
