package classifier

import (
	"strings"

	"github.com/spigell/jobmail/internal/event"
	"github.com/spigell/jobmail/internal/rules"
)

const (
	subjectKeywordWeight  = 2.0
	subjectGeneralWeight  = 1.5
	bodyKeywordWeight     = 1.0
	negativeKeywordWeight = -1.5
	senderDomainWeight    = 2.0
	atsDomainWeight       = 1.0
	noReplyWeight         = 0.5
)

// ScoringResult is the evidence gathered for one event type.
type ScoringResult struct {
	RawScore float64  `json:"rawScore"`
	Matches  []string `json:"matches"`
}

// Scores holds a result for every event type, Other included.
type Scores map[event.Type]ScoringResult

// message is the normalized view of one input, computed once per call.
type message struct {
	subject string
	body    string
	sender  string
	domain  string
}

func newMessage(subject, body, sender string) message {
	return message{
		subject: Normalize(subject),
		body:    Normalize(body),
		sender:  sender,
		domain:  rules.DomainOf(sender),
	}
}

// Score evaluates every event type against the already stripped subject and
// body. Other always scores zero.
func (c *Classifier) Score(subject, body, sender string) Scores {
	msg := newMessage(subject, body, sender)
	scores := make(Scores, len(event.All()))
	for _, t := range event.Scored() {
		scores[t] = c.scoreType(msg, t)
	}
	scores[event.Other] = ScoringResult{Matches: []string{}}
	return scores
}

func (c *Classifier) scoreType(msg message, t event.Type) ScoringResult {
	p := c.rules.Profile(t)
	domains := c.rules.Domains()
	matches := []string{}
	total := 0.0

	for _, kw := range p.SubjectKeywords {
		if strings.Contains(msg.subject, kw) {
			total += subjectKeywordWeight
			matches = append(matches, "[subject] "+kw)
		}
	}

	for _, kw := range p.Keywords {
		if strings.Contains(msg.subject, kw) {
			total += subjectGeneralWeight
			matches = append(matches, "[subject-general] "+kw)
		}
	}

	for _, kw := range p.Keywords {
		if strings.Contains(msg.body, kw) {
			total += bodyKeywordWeight
			matches = append(matches, "[body] "+kw)
		}
	}

	for _, kw := range p.NegativeKeywords {
		if strings.Contains(msg.subject, kw) || strings.Contains(msg.body, kw) {
			total += negativeKeywordWeight
			matches = append(matches, "[negative] "+kw)
		}
	}

	if msg.domain != "" && containsAny(msg.domain, p.SenderDomains) {
		total += senderDomainWeight
		matches = append(matches, "[domain] "+msg.domain)
	}

	if t != event.RecruiterOutreach && domains.IsATS(msg.domain) {
		total += atsDomainWeight
		matches = append(matches, "[ats-domain] "+msg.domain)
	}

	if t == event.ApplicationReceived && domains.IsNoReply(msg.sender) {
		total += noReplyWeight
		matches = append(matches, "[noreply] "+msg.sender)
	}

	total *= p.Weight
	if total < 0 {
		total = 0
	}

	return ScoringResult{RawScore: total, Matches: matches}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
