package classifier

import (
	"regexp"
	"strings"
)

// space also covers the Unicode separators mail clients put in headers, such
// as the no-break space, which RE2's \s leaves out.
const space = `[\s\p{Z}\x{FEFF}]`

var (
	forwardPrefix    = regexp.MustCompile(`(?i)^(?:fwd?|fw):` + space + `*`)
	forwardDelimiter = regexp.MustCompile(`(?i)-+` + space + `*forwarded` + space + `+message` + space + `*-+`)
	forwardMarker    = regexp.MustCompile(`(?i)begin` + space + `+forwarded` + space + `+message:`)
)

// StripForwarded removes the artifacts a mail client adds when a message is
// forwarded: one leading "Fwd:" or "Fw:" and every forwarded-message
// delimiter. Case and the rest of the text are preserved.
func StripForwarded(text string) string {
	text = forwardPrefix.ReplaceAllString(text, "")
	text = forwardDelimiter.ReplaceAllString(text, "")
	return forwardMarker.ReplaceAllString(text, "")
}

// Normalize lower-cases text and collapses whitespace runs into single spaces.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
