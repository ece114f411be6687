package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/jobmail/internal/rules"
)

const (
	companyName = `([A-Z][A-Za-z0-9\s&.\-]+?)`
	companyEnd  = `(?:\s*[,.:;]|\s+[a-z])`
)

// trailingNoise are words a lazy company capture tends to drag along.
var trailingNoise = toSet(
	"we", "our", "the", "thank", "please", "your", "this", "that",
	"has", "have", "is", "are", "was", "were", "will", "would",
	"could", "should", "may", "can", "shall", "for", "and", "but",
	"or", "to", "in", "on", "at", "by", "as", "if", "so", "of",
	"a", "an", "it", "i", "you", "they", "he", "she", "not",
	"after", "before", "with", "from", "about", "into",
)

// Company patterns are case-sensitive: the capitalized first letter is what
// tells a name apart from ordinary prose.
var companies = cascade{
	newRule(`\bteam\s+at\s+`+companyName+companyEnd, pickCompany),
	newRule(`\bon\s+behalf\s+of\s+`+companyName+companyEnd, pickCompany),
	newRule(`\bapplication\s+(?:to|at)\s+`+companyName+companyEnd, pickCompany),
	newRule(`\bat\s+`+companyName+companyEnd, pickCompany),
	newRule(`\bfrom\s+(?:the\s+)?`+companyName+companyEnd, pickCompany),
	newRule(`\bwith\s+`+companyName+companyEnd, pickCompany),
	newRule(`\b([A-Z][A-Za-z0-9\s&.\-]{1,30}?)\s+(?:is pleased|would like|is excited|has reviewed|is delighted)`, pickCompany),
}

func pickCompany(m []string) (string, bool) {
	name := cleanCompanyName(m[1])
	if len(name) < 2 || isCommonWord(name) {
		return "", false
	}
	return name, true
}

func cleanCompanyName(name string) string {
	words := strings.Fields(name)
	for len(words) > 1 {
		if _, noise := trailingNoise[strings.ToLower(words[len(words)-1])]; !noise {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func (e *Extractor) company(text, sender string) string {
	if name := companies.first(text); name != "" {
		return name
	}
	return e.companyFromSender(sender)
}

// companyFromSender guesses the company from the sender domain, taking the
// label before the public suffix. Personal, ATS and job-board domains say
// nothing about the employer and yield an empty result.
func (e *Extractor) companyFromSender(sender string) string {
	domain := rules.DomainOf(sender)
	if domain == "" || e.domains.IsGeneric(domain) || e.domains.IsATS(domain) || e.domains.IsRecruiter(domain) {
		return ""
	}

	labels := strings.Split(domain, ".")
	label := labels[0]
	if len(labels) >= 3 {
		label = labels[len(labels)-2]
	}
	r, size := utf8.DecodeRuneInString(label)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + label[size:]
}
