package extract

import "strings"

var salaries = cascade{
	// "$120,000 - $160,000"
	newRule(`\$(\d{1,3}(?:,\d{3})*)\s*[-–]\s*\$(\d{1,3}(?:,\d{3})*)`, func(m []string) (string, bool) {
		return "$" + m[1] + " - $" + m[2], true
	}),
	newRule(`(?i)base\s+salary\s+(?:of\s+)?\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`, whole),
	// "$150,000 per year". Amounts followed by K are skipped here, so a
	// "$5k bonus" earlier in the text does not hide the salary after it.
	newScanRule(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)([kK]?)\s*(?:per\s+(?:year|annum))?`, func(m []string) (string, bool) {
		if m[2] != "" {
			return "", false
		}
		return whole(m)
	}),
	newRule(`\$(\d{1,3})[kK]\b`, whole),
}

func whole(m []string) (string, bool) {
	return strings.TrimSpace(m[0]), true
}
