package rules

import "github.com/spigell/jobmail/internal/event"

// Profile is the keyword and domain evidence for one scored event type.
// All phrases are lower-case and matched as substrings of normalized text.
type Profile struct {
	// SubjectKeywords only count when found in the subject.
	SubjectKeywords []string
	// Keywords count in both subject and body with different weights.
	Keywords         []string
	NegativeKeywords []string
	// SenderDomains is an optional allowlist of sender domain fragments.
	SenderDomains []string
	Weight        float64
}

func defaultProfiles() map[event.Type]Profile {
	return map[event.Type]Profile{
		event.ApplicationReceived: {
			SubjectKeywords: []string{
				"application received",
				"application confirmation",
				"thank you for applying",
				"thanks for applying",
				"application submitted",
				"we received your application",
				"your application for",
			},
			Keywords: []string{
				"thank you for applying",
				"thanks for applying",
				"received your application",
				"application has been received",
				"application received",
				"submitted successfully",
				"successfully submitted",
				"application is under review",
				"application is being reviewed",
				"reviewing your application",
				"review your qualifications",
				"we appreciate your interest",
				"application confirmed",
				"has been submitted",
				"look forward to reviewing",
			},
			NegativeKeywords: []string{
				"unfortunately",
				"not moving forward",
				"not be moving forward",
				"regret to inform",
				"other candidates",
				"not selected",
				"interview",
			},
			Weight: 1.0,
		},
		event.InterviewRequest: {
			SubjectKeywords: []string{
				"interview invitation",
				"invitation to interview",
				"schedule your interview",
				"phone screen",
				"next steps",
				"quick chat",
				"interview request",
			},
			Keywords: []string{
				"schedule an interview",
				"schedule a call",
				"share your availability",
				"provide your availability",
				"your availability",
				"select a time",
				"book a time",
				"invite you to interview",
				"available for a call",
				"introductory call",
				"set up a time",
				"like to set up",
				"time that works",
				"would love to chat",
				"next step in the interview process",
				"move forward with your application",
				"phone screen",
				"speak with",
			},
			NegativeKeywords: []string{
				"unfortunately",
				"regret",
				"not moving forward",
				"other candidates",
				"has been scheduled",
				"confirmed for",
			},
			Weight: 1.0,
		},
		event.InterviewScheduled: {
			SubjectKeywords: []string{
				"interview confirmed",
				"interview scheduled",
				"meeting confirmed",
				"upcoming interview",
				"interview confirmation",
			},
			Keywords: []string{
				"interview is confirmed",
				"confirmed for",
				"has been scheduled",
				"meeting has been scheduled",
				"calendar invite",
				"meet.google.com",
				"zoom.us",
				"join link",
				"zoom link",
				"teams.microsoft.com",
				"interview panel",
				"you will be meeting with",
				"interview details",
				"interview agenda",
				"please arrive",
				"see you on",
			},
			NegativeKeywords: []string{
				"unfortunately",
				"regret",
				"not moving forward",
				"other candidates",
				"share your availability",
			},
			Weight: 1.0,
		},
		event.Assessment: {
			SubjectKeywords: []string{
				"assessment",
				"coding challenge",
				"take-home",
				"take home",
				"technical test",
				"online test",
				"skills test",
			},
			Keywords: []string{
				"hackerrank",
				"codility",
				"coderpad",
				"leetcode",
				"codesignal",
				"karat",
				"coding challenge",
				"technical assessment",
				"online assessment",
				"timed assessment",
				"take-home",
				"take home",
				"coding test",
				"skills test",
				"complete the assessment",
				"complete this exercise",
				"system design exercise",
				"work sample",
				"assessment link",
				"assessment deadline",
			},
			NegativeKeywords: []string{
				"unfortunately",
				"regret",
				"not moving forward",
			},
			Weight: 1.0,
		},
		event.Offer: {
			SubjectKeywords: []string{
				"offer letter",
				"your offer",
				"offer of employment",
				"job offer",
				"offer details",
				"congratulations",
				"welcome to the team",
			},
			Keywords: []string{
				"pleased to offer",
				"thrilled to offer",
				"delighted to extend",
				"extend an offer",
				"extend a formal offer",
				"offer of employment",
				"offer letter",
				"starting salary",
				"base salary",
				"signing bonus",
				"equity grant",
				"stock options",
				"compensation package",
				"benefits package",
				"start date",
				"review and sign",
				"welcome aboard",
				"background check",
				"pleased to inform you",
			},
			NegativeKeywords: []string{
				"rescind",
				"unable to proceed with the offer",
				"not be extending",
				"regret to inform",
			},
			Weight: 1.0,
		},
		event.Rejection: {
			SubjectKeywords: []string{
				"update on your application",
				"application status",
				"regarding your application",
				"application update",
			},
			Keywords: []string{
				"unfortunately",
				"regret to inform",
				"decided to pursue other candidates",
				"pursue other candidates",
				"move forward with other candidates",
				"other candidates",
				"not moving forward",
				"not be moving forward",
				"not to move forward",
				"chosen not to",
				"decided not to",
				"not selected",
				"were not selected",
				"position has been filled",
				"keep your resume on file",
				"wish you all the best",
				"wish you the best",
				"best of luck",
				"after careful consideration",
				"competitive pool",
				"unable to proceed",
				"not be extending",
				"apply again",
				"future positions",
				"future opportunities",
			},
			Weight: 1.0,
		},
		event.RecruiterOutreach: {
			SubjectKeywords: []string{
				"exciting opportunity",
				"opportunity at",
				"great match",
				"reaching out",
				"role you might",
				"interested in",
			},
			Keywords: []string{
				"came across your profile",
				"your profile",
				"impressed by your background",
				"your background",
				"i am recruiting",
				"recruiter",
				"open to exploring",
				"exploring new opportunities",
				"new opportunities",
				"might interest you",
				"great match",
				"on behalf of my client",
				"my client",
				"reaching out",
				"potential opportunity",
				"currently looking",
				"thought of you",
				"talent acquisition",
				"competitive compensation",
				"top-tier company",
				"would love to chat",
			},
			NegativeKeywords: []string{
				"your application",
				"thank you for applying",
				"interview is confirmed",
				"unfortunately",
			},
			SenderDomains: append([]string(nil), defaultRecruiterDomains...),
			Weight:        1.0,
		},
	}
}

func (p Profile) clone() Profile {
	return Profile{
		SubjectKeywords:  append([]string(nil), p.SubjectKeywords...),
		Keywords:         append([]string(nil), p.Keywords...),
		NegativeKeywords: append([]string(nil), p.NegativeKeywords...),
		SenderDomains:    append([]string(nil), p.SenderDomains...),
		Weight:           p.Weight,
	}
}
