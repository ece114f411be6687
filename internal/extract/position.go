package extract

import "strings"

const title = `([A-Z][A-Za-z\s/\-]+?)`

var positions = cascade{
	newRule(`(?i)\b(?:for|to)\s+the\s+`+title+`(?:\s+(?:role|position|job|opening))`, pickPosition),
	newRule(`(?i)\b`+title+`\s+(?:role|position|job|opening)\s+(?:at|with)`, pickPosition),
	newRule(`(?i)\brole\s+of\s+`+title+`(?:\s*[,.]|\s+(?:at|with|in))`, pickPosition),
	newRule(`(?i)\bposition\s+of\s+`+title+`(?:\s*[,.]|\s+(?:at|with|in))`, pickPosition),
	newRule(`(?i)\bposition:\s*([A-Za-z\s/\-]+?)(?:\s*[,.\n])`, pickPosition),
	newRule(`(?i)\bas\s+(?:a|an)\s+`+title+`(?:\s*[,.]|\s+(?:at|with|in|on|for))`, pickPosition),
	newRule(`(?i)\bapplication\s+for\s+(?:the\s+)?`+title+`(?:\s*[,.]|\s+(?:at|with|has|was|is))`, pickPosition),
	newRule(`(?i)\bhiring\s+(?:a|an)\s+`+title+`(?:\s*[,.]|\s+(?:to|for|who|in))`, pickPosition),
	// "Software Engineer - Acme" style subject lines.
	newRule(`^`+title+`\s*[-|–]\s*[A-Z]`, pickPosition),
}

func pickPosition(m []string) (string, bool) {
	name := strings.TrimSpace(m[1])
	if len(name) < 3 || isCommonWord(name) {
		return "", false
	}
	return name, true
}
