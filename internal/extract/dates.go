package extract

import "strings"

const (
	weekday   = `(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)`
	clockTime = `\d{1,2}(?::\d{2})?\s*(?:am|pm|AM|PM)`
	// clockHour allows a bare hour as in "tomorrow at 10".
	clockHour = `\d{1,2}(?::\d{2})?\s*(?:am|pm|AM|PM)?`
	monthDay  = `[A-Z][a-z]+\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?`
)

var interviewDates = cascade{
	newRule(`(?i)\b(?:scheduled|confirmed)\s+for\s+(?:`+weekday+`,?\s+)?(`+monthDay+`(?:\s+at\s+`+clockTime+`)?)`, group),
	newRule(`(?i)\bon\s+(?:`+weekday+`,?\s+)?(`+monthDay+`)`, group),
	newRule(`(?i)\b(?:scheduled|confirmed)\s+for\s+(`+weekday+`(?:\s+at\s+`+clockTime+`)?)`, group),
	newRule(`(?i)\bat\s+(`+clockTime+`)\s+on\s+([A-Z][a-z]+\s+\d{1,2})`, timeOnDay),
	newRule(`\b(\d{4}-\d{2}-\d{2})\b`, group),
	newRule(`\b(\d{1,2}/\d{1,2}/\d{4})\b`, group),
	newRule(`(?i)\b(this\s+`+weekday+`(?:\s+at\s+`+clockHour+`)?)`, group),
	newRule(`(?i)\b(tomorrow(?:\s+at\s+`+clockHour+`)?)`, group),
}

// timeOnDay rewrites "at 2:00 PM on January 15" as "January 15 at 2:00 PM".
func timeOnDay(m []string) (string, bool) {
	return strings.TrimSpace(m[2] + " at " + m[1]), true
}

var deadlines = cascade{
	newRule(`(?i)\b(?:complete|submit|respond|reply)\s+(?:by|before|within)\s+(`+monthDay+`)`, group),
	newRule(`(?i)\bdeadline:?\s+(`+monthDay+`)`, group),
	newRule(`(?i)\byou\s+have\s+(\d+\s+(?:hours|days|weeks?))\b`, group),
}
