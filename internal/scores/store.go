// Package scores keeps the rolling history of finished rounds on disk.
//
// The log is a JSON array of records, newest last, capped at MaxEntries. Every
// save rewrites the whole file. A missing or unreadable log is treated as an
// empty history and is never reported to the player.
package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/jfosburgh/typing-ninja/internal/stats"
)

const (
	MaxEntries = 20
	DateLayout = "2006-01-02 15:04:05"
)

type Record struct {
	WPM      float64 `json:"wpm"`
	Accuracy float64 `json:"accuracy"`
	Date     string  `json:"date"`
}

type Store struct {
	path string
	now  func() time.Time
	log  zerolog.Logger
}

type Option func(*Store)

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

func New(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		now:  time.Now,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) read() []byte {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Err(err).Str("path", s.path).Msg("score log unreadable, treating as empty")
		}
		return nil
	}
	return data
}

// entries returns the elements of the log. Anything other than a valid JSON
// array counts as an empty log.
func (s *Store) entries() []gjson.Result {
	data := s.read()
	if data == nil {
		return nil
	}
	if !gjson.ValidBytes(data) {
		s.log.Debug().Str("path", s.path).Msg("score log corrupt, treating as empty")
		return nil
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		s.log.Debug().Str("path", s.path).Msg("score log is not an array, treating as empty")
		return nil
	}
	return root.Array()
}

// History returns the stored records, oldest first. Fields are read loosely:
// a record with a mistyped field keeps its place with that field coerced.
func (s *Store) History() []Record {
	return lo.Map(s.entries(), func(e gjson.Result, _ int) Record {
		return Record{
			WPM:      e.Get("wpm").Float(),
			Accuracy: e.Get("accuracy").Float(),
			Date:     e.Get("date").String(),
		}
	})
}

// Save appends a record for a finished round and rewrites the log, keeping
// only the most recent MaxEntries records.
func (s *Store) Save(wpm, accuracy float64) (Record, error) {
	rec := Record{
		WPM:      stats.Round1(wpm),
		Accuracy: stats.Round1(accuracy),
		Date:     s.now().Format(DateLayout),
	}

	entry, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encode score: %w", err)
	}

	// Existing entries are written back untouched.
	records := lo.Map(s.entries(), func(e gjson.Result, _ int) json.RawMessage {
		return json.RawMessage(e.Raw)
	})
	records = append(records, entry)
	if len(records) > MaxEntries {
		records = records[len(records)-MaxEntries:]
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return rec, fmt.Errorf("encode score log: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return rec, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return rec, fmt.Errorf("write score log: %w", err)
	}

	s.log.Info().
		Float64("wpm", rec.WPM).
		Float64("accuracy", rec.Accuracy).
		Int("entries", len(records)).
		Msg("score saved")
	return rec, nil
}

// HighScore is the best wpm in the log, or 0 when there is none.
func (s *Store) HighScore() float64 {
	return lo.Max(lo.Map(s.entries(), func(e gjson.Result, _ int) float64 {
		return e.Get("wpm").Float()
	}))
}
