// Package classifier labels job-search emails with an event type and a
// calibrated confidence. Classification is a pure function of its input: it
// performs no I/O, keeps no state between calls and never fails.
package classifier

import (
	"github.com/spigell/jobmail/internal/event"
	"github.com/spigell/jobmail/internal/extract"
	"github.com/spigell/jobmail/internal/rules"
)

// Input is one email as seen by the classifier. Sender may be a bare address
// or any other string.
type Input struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Sender  string `json:"sender"`
}

// Output is the classification of one email.
type Output struct {
	EventType     event.Type             `json:"eventType"`
	Confidence    float64                `json:"confidence"`
	ExtractedData extract.Data           `json:"extractedData"`
	RawMatches    []string               `json:"rawMatches"`
	AllScores     map[event.Type]float64 `json:"allScores"`
}

// IsNewsletter reports whether the output came from the bulk-mail
// short-circuit rather than from scoring.
func (o Output) IsNewsletter() bool {
	return len(o.RawMatches) == 1 && o.RawMatches[0] == newsletterMatch
}

// Classifier holds the immutable rule tables. The zero value is not usable;
// create one with New.
type Classifier struct {
	rules     *rules.Ruleset
	extractor *extract.Extractor
}

// New creates a Classifier over rs. A nil ruleset means the built-in one.
func New(rs *rules.Ruleset) *Classifier {
	if rs == nil {
		rs = rules.Default()
	}
	return &Classifier{
		rules:     rs,
		extractor: extract.New(rs.Domains()),
	}
}

var defaultClassifier = New(nil)

// Classify labels one email with the built-in rules.
func Classify(subject, body, sender string) Output {
	return defaultClassifier.Classify(Input{Subject: subject, Body: body, Sender: sender})
}

// Classify labels one email. Fields are extracted for every message, including
// newsletters and messages that end up as Other.
func (c *Classifier) Classify(in Input) Output {
	subject := StripForwarded(in.Subject)
	body := StripForwarded(in.Body)

	data := c.extractor.Extract(subject, body, in.Sender)

	if c.IsNewsletter(subject, body) {
		return Output{
			EventType:     event.Other,
			Confidence:    newsletterConfidence,
			ExtractedData: data,
			RawMatches:    []string{newsletterMatch},
			AllScores:     map[event.Type]float64{},
		}
	}

	scores := c.Score(subject, body, in.Sender)
	best := Resolve(scores)
	result := scores[best]
	confidence := Confidence(result.RawScore)

	all := make(map[event.Type]float64, len(scores))
	for t, r := range scores {
		all[t] = Confidence(r.RawScore)
	}

	out := Output{
		EventType:     best,
		Confidence:    confidence,
		ExtractedData: data,
		RawMatches:    result.Matches,
		AllScores:     all,
	}
	if confidence < minConfidence {
		out.EventType = event.Other
	}
	return out
}
