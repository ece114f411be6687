package rules

import "strings"

// Domains groups the sender reference tables. The ATS, recruiter and no-reply
// tables are substring lists; generic providers are an exact-domain set. The
// tables are read through methods only.
type Domains struct {
	ats       []string
	recruiter []string
	noReply   []string
	generic   map[string]struct{}
}

var defaultATSDomains = []string{
	"greenhouse.io",
	"lever.co",
	"myworkdayjobs.com",
	"workday.com",
	"icims.com",
	"taleo.net",
	"oraclecloud.com",
	"bamboohr.com",
	"smartrecruiters.com",
	"jobvite.com",
	"ashbyhq.com",
	"breezy.hr",
	"recruitee.com",
	"jazz.co",
	"applytojob.com",
	"hire.lever.co",
	"boards.greenhouse.io",
	"jobs.lever.co",
	"app.dover.io",
	"wellfound.com",
	"rippling.com",
}

var defaultRecruiterDomains = []string{
	"linkedin.com",
	"indeed.com",
	"ziprecruiter.com",
	"glassdoor.com",
	"monster.com",
	"dice.com",
	"hired.com",
	"otta.com",
	"wellfound.com",
	"angel.co",
	"weworkremotely.com",
	"remoteok.com",
}

var defaultNoReplyPrefixes = []string{
	"noreply@",
	"no-reply@",
	"donotreply@",
	"do-not-reply@",
	"notifications@",
	"careers@",
	"recruiting@",
	"talent@",
	"hiring@",
	"jobs@",
	"hr@",
}

var defaultGenericDomains = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"aol.com",
	"icloud.com",
	"protonmail.com",
	"mail.com",
	"live.com",
	"msn.com",
}

func defaultDomains() Domains {
	return Domains{
		ats:       append([]string(nil), defaultATSDomains...),
		recruiter: append([]string(nil), defaultRecruiterDomains...),
		noReply:   append([]string(nil), defaultNoReplyPrefixes...),
		generic:   toSet(defaultGenericDomains),
	}
}

// DomainOf returns the lower-cased part of the address after the first "@",
// or an empty string when the address has none.
func DomainOf(sender string) string {
	_, domain, found := strings.Cut(sender, "@")
	if !found {
		return ""
	}
	// "a@b@c" keeps only "b", matching how the address is split elsewhere.
	domain, _, _ = strings.Cut(domain, "@")
	return strings.ToLower(domain)
}

// IsATS reports whether the domain belongs to an applicant-tracking vendor.
func (d *Domains) IsATS(domain string) bool {
	return containsAny(strings.ToLower(domain), d.ats)
}

// IsRecruiter reports whether the domain belongs to a job board or recruiter platform.
func (d *Domains) IsRecruiter(domain string) bool {
	return containsAny(strings.ToLower(domain), d.recruiter)
}

// IsNoReply reports whether the full address looks like an automated mailbox.
func (d *Domains) IsNoReply(address string) bool {
	return containsAny(strings.ToLower(address), d.noReply)
}

// IsGeneric reports whether the domain is a personal mail provider.
func (d *Domains) IsGeneric(domain string) bool {
	_, ok := d.generic[strings.ToLower(domain)]
	return ok
}

func containsAny(s string, needles []string) bool {
	if s == "" {
		return false
	}
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
