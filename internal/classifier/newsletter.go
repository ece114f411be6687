package classifier

import "strings"

const (
	newsletterThreshold  = 2
	newsletterConfidence = 0.1
	newsletterMatch      = "[newsletter-detected]"
)

// newsletterSignals counts how many distinct bulk-mail phrases occur in the
// combined subject and body.
func newsletterSignals(subject, body string, signals []string) int {
	text := Normalize(subject + " " + body)
	count := 0
	for _, s := range signals {
		if strings.Contains(text, s) {
			count++
		}
	}
	return count
}

// IsNewsletter reports whether the message carries enough job-board digest
// signals to be treated as bulk mail.
func (c *Classifier) IsNewsletter(subject, body string) bool {
	return newsletterSignals(subject, body, c.rules.NewsletterSignals()) >= newsletterThreshold
}
