// Package assets loads the font, background, sound effects and music used by
// the screens. Every asset has a fallback, so loading never fails: problems
// are reported as warnings and play continues without the asset.
package assets

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"

	"github.com/jfosburgh/typing-ninja/internal/render"
)

// Paths lists where each asset lives. Empty paths are treated as missing.
type Paths struct {
	Font         string
	FontSize     float64
	Background   string
	CorrectSound string
	BlipSound    string
	Music        string
	Mute         bool
}

type Assets struct {
	Face       font.Face
	Background render.Backdrop
	Correct    Sound
	Blip       Sound

	picture *render.Picture
	mixer   *Mixer
}

// BackgroundFill is shown when no background image could be loaded.
var BackgroundFill = lipgloss.Color("#000000")

func Load(p Paths, log zerolog.Logger) *Assets {
	a := &Assets{
		Face:       FallbackFace,
		Background: render.SolidFill(BackgroundFill),
		Correct:    Silent{},
		Blip:       Silent{},
	}

	if face, err := LoadFace(p.Font, p.FontSize); err != nil {
		log.Warn().Err(err).Str("file", p.Font).Msg("could not load custom font, using system font")
	} else {
		a.Face = face
	}

	if img, err := LoadImage(p.Background); err != nil {
		log.Warn().Err(err).Str("file", p.Background).Msg("could not load background image, using black screen")
	} else {
		a.picture = render.NewPicture(img)
		a.Background = a.picture
	}

	if p.Mute {
		log.Info().Msg("audio muted")
		return a
	}

	mixer, err := NewMixer()
	if err != nil {
		log.Warn().Err(err).Msg("no audio device, sounds disabled")
		return a
	}
	a.mixer = mixer

	if s, err := mixer.LoadEffect(p.CorrectSound); err != nil {
		log.Warn().Err(err).Str("file", p.CorrectSound).Msg("could not load sound, using silence")
	} else {
		a.Correct = s
	}
	if s, err := mixer.LoadEffect(p.BlipSound); err != nil {
		log.Warn().Err(err).Str("file", p.BlipSound).Msg("could not load sound, using silence")
	} else {
		a.Blip = s
	}

	if err := mixer.PlayMusic(p.Music); err != nil {
		log.Warn().Err(err).Str("file", p.Music).Msg("could not load music, no background music")
	}

	return a
}

// Resize fits the background image to the terminal.
func (a *Assets) Resize(width, height int) {
	if a.picture != nil {
		a.picture.Fit(width, height)
	}
}

func (a *Assets) Close() error {
	if a.mixer == nil {
		return nil
	}
	return a.mixer.Close()
}
