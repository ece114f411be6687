package extract

import (
	"regexp"
	"strings"
)

// rule pairs a pattern with a function that turns its submatches into a value.
// Returning false rejects the match. A rule marked every then offers its later
// matches before the next rule gets a chance.
type rule struct {
	re    *regexp.Regexp
	pick  func(m []string) (string, bool)
	every bool
}

type cascade []rule

func (c cascade) first(text string) string {
	if text == "" {
		return ""
	}
	for _, r := range c {
		if r.every {
			for _, m := range r.re.FindAllStringSubmatch(text, -1) {
				if v, ok := r.pick(m); ok {
					return v
				}
			}
			continue
		}

		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, ok := r.pick(m); ok {
			return v
		}
	}
	return ""
}

// group returns the first capture group, trimmed.
func group(m []string) (string, bool) {
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

func newRule(expr string, pick func([]string) (string, bool)) rule {
	return rule{re: regexp.MustCompile(expr), pick: pick}
}

// newScanRule is newRule for patterns whose first match may be rejected while
// a later one in the same text is valid.
func newScanRule(expr string, pick func([]string) (string, bool)) rule {
	r := newRule(expr, pick)
	r.every = true
	return r
}

// commonWords are greetings and pronouns that are never a company or a title.
var commonWords = toSet(
	"the", "our", "your", "this", "that", "their", "these", "those",
	"hello", "dear", "thanks", "thank", "please", "best", "regards",
	"hi", "hey", "good", "great", "team", "all", "we", "you",
)

func isCommonWord(s string) bool {
	_, ok := commonWords[strings.ToLower(s)]
	return ok
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
