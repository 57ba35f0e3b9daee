package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jfosburgh/typing-ninja/internal/assets"
	"github.com/jfosburgh/typing-ninja/internal/render"
	"github.com/jfosburgh/typing-ninja/internal/scores"
	"github.com/jfosburgh/typing-ninja/internal/words"
)

const (
	RoundLength = 10
	DefaultFPS  = 60

	DefaultWidth  = 80
	DefaultHeight = 24

	DefaultScoresFile = "scores.json"
)

// Env is everything the screens share for the lifetime of the program. It is
// built once in main and torn down when the program exits.
type Env struct {
	Words  *words.Source
	Scores *scores.Store
	Assets *assets.Assets
	Log    zerolog.Logger

	Now   func() time.Time
	NewID func() string

	FPS         int
	RoundLength int
}

func (e *Env) withDefaults() *Env {
	if e.Words == nil {
		e.Words = words.Embedded()
	}
	if e.Scores == nil {
		e.Scores = scores.New(DefaultScoresFile, scores.WithLogger(e.Log))
	}
	if e.Assets == nil {
		e.Assets = &assets.Assets{
			Face:       assets.FallbackFace,
			Background: render.Blank{},
			Correct:    assets.Silent{},
			Blip:       assets.Silent{},
		}
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.NewID == nil {
		e.NewID = uuid.NewString
	}
	if e.FPS <= 0 {
		e.FPS = DefaultFPS
	}
	if e.RoundLength <= 0 {
		e.RoundLength = RoundLength
	}
	return e
}

func (e *Env) Close() error {
	if e.Assets == nil {
		return nil
	}
	return e.Assets.Close()
}
