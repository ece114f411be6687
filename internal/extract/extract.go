// Package extract pulls best-effort structured fields out of job-search
// emails. Every field is produced by an ordered cascade of patterns where the
// first accepted match wins.
package extract

import "github.com/spigell/jobmail/internal/rules"

// Data holds the extracted fields. An empty string means the field was not
// found.
type Data struct {
	Company        string `json:"company,omitempty"`
	Position       string `json:"position,omitempty"`
	InterviewDate  string `json:"interviewDate,omitempty"`
	AssessmentLink string `json:"assessmentLink,omitempty"`
	Salary         string `json:"salary,omitempty"`
	Deadline       string `json:"deadline,omitempty"`
}

// IsEmpty reports whether no field was extracted.
func (d Data) IsEmpty() bool {
	return d == Data{}
}

// Extractor runs the field cascades. It is safe for concurrent use.
type Extractor struct {
	domains *rules.Domains
}

// New creates an Extractor that consults domains for the company fallback.
// A nil domains value means the built-in tables.
func New(domains *rules.Domains) *Extractor {
	if domains == nil {
		domains = rules.Default().Domains()
	}
	return &Extractor{domains: domains}
}

// Extract returns every field it can find. Subject and body are expected to be
// already stripped of forwarding artifacts but otherwise in original case.
// Company, position and interview date look at both subject and body; the
// other fields only at the body.
func (e *Extractor) Extract(subject, body, sender string) Data {
	combined := subject + " " + body

	return Data{
		Company:        e.company(combined, sender),
		Position:       positions.first(combined),
		InterviewDate:  interviewDates.first(combined),
		AssessmentLink: assessmentLinks.first(body),
		Salary:         salaries.first(body),
		Deadline:       deadlines.first(body),
	}
}
