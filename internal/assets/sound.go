package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Sound is a short effect that can be triggered from the update loop.
type Sound interface {
	Play()
}

// Silent plays nothing. It stands in for effects that failed to load.
type Silent struct{}

func (Silent) Play() {}

// Mixer owns the audio device. Decoded streams are 16-bit little-endian
// stereo at SampleRate, the format the ebiten decoders produce.
type Mixer struct {
	ctx *oto.Context

	mu     sync.Mutex
	active []*oto.Player
	music  *oto.Player
}

func NewMixer() (*Mixer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	return &Mixer{ctx: ctx}, nil
}

func decode(path string, r io.Reader) (io.ReadSeeker, int64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(SampleRate, r)
		if err != nil {
			return nil, 0, err
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

// LoadEffect decodes a whole file into memory so it can be replayed cheaply.
func (m *Mixer) LoadEffect(path string) (Sound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sound: %w", err)
	}
	stream, _, err := decode(path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode sound %s: %w", path, err)
	}
	return &effect{mixer: m, pcm: pcm}, nil
}

// PlayMusic starts path looping in the background, replacing any track
// already playing.
func (m *Mixer) PlayMusic(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read music: %w", err)
	}
	stream, length, err := decode(path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode music %s: %w", path, err)
	}

	p := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
	m.mu.Lock()
	if m.music != nil {
		_ = m.music.Close()
	}
	m.music = p
	m.mu.Unlock()
	p.Play()
	return nil
}

func (m *Mixer) play(pcm []byte) {
	p := m.ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()

	// Players must stay referenced until they finish.
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.active[:0]
	for _, a := range m.active {
		if a.IsPlaying() {
			kept = append(kept, a)
		} else {
			_ = a.Close()
		}
	}
	m.active = append(kept, p)
}

func (m *Mixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.active {
		_ = a.Close()
	}
	m.active = nil
	if m.music != nil {
		_ = m.music.Close()
		m.music = nil
	}
	return m.ctx.Suspend()
}

type effect struct {
	mixer *Mixer
	pcm   []byte
}

func (e *effect) Play() {
	e.mixer.play(e.pcm)
}
