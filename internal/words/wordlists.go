package words

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties in the order they are offered to the player.
var Difficulties = []Difficulty{Easy, Medium, Hard}

//go:embed wordlists/easy.txt
var easyString string

//go:embed wordlists/medium.txt
var mediumString string

//go:embed wordlists/hard.txt
var hardString string

type WordList []string

// ParseDifficulty maps a label onto a known difficulty. Anything it does not
// recognise is treated as Medium.
func ParseDifficulty(label string) Difficulty {
	d := Difficulty(strings.ToLower(strings.TrimSpace(label)))
	if lo.Contains(Difficulties, d) {
		return d
	}
	return Medium
}

func (d Difficulty) Title() string {
	s := string(d)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func parseList(raw string) WordList {
	return lo.Compact(lo.Map(strings.Split(raw, "\n"), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

func (w WordList) Random() string {
	return lo.Sample(w)
}

func (w WordList) Contains(word string) bool {
	return lo.Contains(w, word)
}

// Source holds one word list per difficulty. It is immutable once built.
type Source struct {
	lists map[Difficulty]WordList
}

// Embedded returns the word lists compiled into the binary.
func Embedded() *Source {
	return &Source{lists: map[Difficulty]WordList{
		Easy:   parseList(easyString),
		Medium: parseList(mediumString),
		Hard:   parseList(hardString),
	}}
}

// NewSource builds a Source from explicit lists. Difficulties without a
// non-empty list fall back to the embedded one.
func NewSource(lists map[Difficulty]WordList) *Source {
	s := Embedded()
	for d, list := range lists {
		list = lo.Compact(list)
		if len(list) == 0 || !lo.Contains(Difficulties, d) {
			continue
		}
		s.lists[d] = list
	}
	return s
}

// Load reads a JSON object of the form {"easy": [...], "medium": [...],
// "hard": [...]}. Keys that are missing or empty keep the embedded words.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word file: %w", err)
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse word file %s: %w", path, err)
	}

	lists := make(map[Difficulty]WordList, len(raw))
	for label, list := range raw {
		lists[Difficulty(strings.ToLower(label))] = lo.Map(list, func(w string, _ int) string {
			return strings.TrimSpace(w)
		})
	}

	return NewSource(lists), nil
}

// List returns the words for a difficulty, using Medium for unknown labels.
func (s *Source) List(level Difficulty) WordList {
	if list, ok := s.lists[level]; ok {
		return list
	}
	return s.lists[Medium]
}

// Get returns a uniformly random word for the difficulty. Consecutive calls
// may return the same word.
func (s *Source) Get(level Difficulty) string {
	return s.List(level).Random()
}
