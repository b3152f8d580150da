package patterns

import (
	"regexp"

	"github.com/datahunter/datahunter/internal/types"
)

var contactPatterns = []*Pattern{
	{Category: types.CatEmails, Name: "email", Description: "Email address",
		re: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
	{Category: types.CatPhones, Name: "phone", Description: "Phone number, loose international format",
		re:         regexp.MustCompile(`\b(?:\+?(\d{1,3}))?[-. (]*(\d{3})[-. )]*(\d{3})[-. ]*(\d{4})\b`),
		joinGroups: true},
	{Category: types.CatIPAddresses, Name: "ipv4", Description: "IPv4 address",
		re: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)},
}
