package classifier

import (
	"math"
	"sort"

	"github.com/spigell/jobmail/internal/event"
)

const (
	// closeRatio is how much the leader must outscore the runner-up before
	// priority stops deciding between them.
	closeRatio    = 1.2
	maxConfidence = 0.95
	minConfidence = 0.25
	decay         = 0.25
)

type ranked struct {
	typ   event.Type
	score float64
}

// Resolve picks the winning event type. When the two best scores are within
// closeRatio of each other the more consequential type wins.
func Resolve(scores Scores) event.Type {
	candidates := make([]ranked, 0, len(scores))
	for _, t := range event.Scored() {
		if r, ok := scores[t]; ok && r.RawScore > 0 {
			candidates = append(candidates, ranked{typ: t, score: r.RawScore})
		}
	}

	switch len(candidates) {
	case 0:
		return event.Other
	case 1:
		return candidates[0].typ
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	first, second := candidates[0], candidates[1]
	if first.score/second.score < closeRatio {
		if first.typ.Priority() <= second.typ.Priority() {
			return first.typ
		}
		return second.typ
	}
	return first.typ
}

// Confidence maps a raw score onto [0, 0.95] with an exponential curve,
// rounded to two decimals.
func Confidence(raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	c := math.Round((1-math.Exp(-decay*raw))*100) / 100
	return math.Min(maxConfidence, c)
}
