package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spigell/jobmail/internal/event"
)

var defaultNewsletterSignals = []string{
	"unsubscribe",
	"email preferences",
	"manage your notifications",
	"weekly digest",
	"job alert",
	"jobs matching your search",
	"new jobs for you",
	"recommended jobs",
	"similar jobs",
	"view in browser",
}

// Ruleset is the complete reference data the classifier reads. A Ruleset is
// never modified after construction, so one value can be shared by any number
// of goroutines.
type Ruleset struct {
	profiles          map[event.Type]Profile
	domains           Domains
	newsletterSignals []string
}

var defaultRuleset = newDefault()

func newDefault() *Ruleset {
	return &Ruleset{
		profiles:          defaultProfiles(),
		domains:           defaultDomains(),
		newsletterSignals: append([]string(nil), defaultNewsletterSignals...),
	}
}

// Default returns the built-in ruleset.
func Default() *Ruleset {
	return defaultRuleset
}

// Profile returns a copy of the profile for t. Other and unknown types get an
// empty profile with weight 1.
func (r *Ruleset) Profile(t event.Type) Profile {
	if p, ok := r.profiles[t]; ok {
		return p.clone()
	}
	return Profile{Weight: 1}
}

// Domains returns the sender reference tables.
func (r *Ruleset) Domains() *Domains {
	return &r.domains
}

// NewsletterSignals returns a copy of the phrases that mark bulk job-board mail.
func (r *Ruleset) NewsletterSignals() []string {
	return slices.Clone(r.newsletterSignals)
}

// Extend returns a new ruleset with the overrides appended to the receiver's
// tables. The receiver is left untouched.
func (r *Ruleset) Extend(o *Overrides) (*Ruleset, error) {
	if o == nil {
		return r, nil
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	next := &Ruleset{
		profiles: make(map[event.Type]Profile, len(r.profiles)),
		domains: Domains{
			ats:       appendLower(r.domains.ats, o.ATSDomains),
			recruiter: appendLower(r.domains.recruiter, o.RecruiterDomains),
			noReply:   appendLower(r.domains.noReply, o.NoReply),
			generic:   make(map[string]struct{}, len(r.domains.generic)+len(o.GenericDomains)),
		},
		newsletterSignals: appendLower(r.newsletterSignals, o.NewsletterSignals),
	}
	for d := range r.domains.generic {
		next.domains.generic[d] = struct{}{}
	}
	for _, d := range appendLower(nil, o.GenericDomains) {
		next.domains.generic[d] = struct{}{}
	}

	for t, p := range r.profiles {
		next.profiles[t] = p.clone()
	}

	for name, co := range o.Categories {
		t, err := event.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("rules override: %w", err)
		}
		if t == event.Other {
			return nil, fmt.Errorf("rules override: %s is not a scored category", t)
		}

		p := next.profiles[t]
		p.SubjectKeywords = appendLower(p.SubjectKeywords, co.SubjectKeywords)
		p.Keywords = appendLower(p.Keywords, co.Keywords)
		p.NegativeKeywords = appendLower(p.NegativeKeywords, co.NegativeKeywords)
		p.SenderDomains = appendLower(p.SenderDomains, co.SenderDomains)
		if co.Weight != 0 {
			p.Weight = co.Weight
		}
		next.profiles[t] = p
	}

	return next, nil
}

// appendLower appends the trimmed, lower-cased extras that are not already
// present. Each phrase counts once no matter how often it is configured.
func appendLower(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	out = append(out, base...)

	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, b := range base {
		seen[b] = struct{}{}
	}

	for _, e := range extra {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
