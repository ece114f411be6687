package event

import (
	"fmt"
	"strings"
)

// Type is a job-search event label assigned to an email.
type Type string

const (
	ApplicationReceived Type = "APPLICATION_RECEIVED"
	InterviewRequest    Type = "INTERVIEW_REQUEST"
	InterviewScheduled  Type = "INTERVIEW_SCHEDULED"
	Assessment          Type = "ASSESSMENT"
	Offer               Type = "OFFER"
	Rejection           Type = "REJECTION"
	RecruiterOutreach   Type = "RECRUITER_OUTREACH"
	// Other is the fallback label. It is never scored directly.
	Other Type = "OTHER"
)

var all = []Type{
	ApplicationReceived,
	InterviewRequest,
	InterviewScheduled,
	Assessment,
	Offer,
	Rejection,
	RecruiterOutreach,
	Other,
}

// priority lists scored types from the most to the least consequential.
var priority = []Type{
	Rejection,
	Offer,
	InterviewScheduled,
	InterviewRequest,
	Assessment,
	ApplicationReceived,
	RecruiterOutreach,
	Other,
}

// All returns every event type in enumeration order, Other last.
func All() []Type {
	return append([]Type(nil), all...)
}

// Scored returns the event types that take part in scoring.
func Scored() []Type {
	return append([]Type(nil), all[:len(all)-1]...)
}

// Priority returns the tie-break rank of the type. Lower wins.
func (t Type) Priority() int {
	for idx, p := range priority {
		if p == t {
			return idx
		}
	}
	return len(priority)
}

// Valid reports whether t is one of the known event types.
func (t Type) Valid() bool {
	for _, known := range all {
		if known == t {
			return true
		}
	}
	return false
}

func (t Type) String() string { return string(t) }

// Parse converts a case-insensitive name such as "rejection" or
// "interview-request" into a Type.
func Parse(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	t := Type(name)
	if !t.Valid() {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return t, nil
}
