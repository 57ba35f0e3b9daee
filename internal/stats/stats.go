// Package stats turns the counters of a finished round into the numbers shown
// on the results screen.
package stats

import (
	"math"
	"time"
)

// Round is what a typing round hands over when it finishes.
type Round struct {
	Correct int
	Total   int
	Start   time.Time
	End     time.Time
}

type Result struct {
	WPM      float64
	Accuracy float64
}

func (r Round) Elapsed() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Round) Result() Result {
	return Result{
		WPM:      WPM(r.Correct, r.Elapsed()),
		Accuracy: Accuracy(r.Correct, r.Total),
	}
}

// WPM is correct words per minute. A non-positive elapsed time yields 0.
func WPM(correct int, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(correct) / seconds * 60
}

// Accuracy is the percentage of attempts that matched. No attempts yields 0.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
