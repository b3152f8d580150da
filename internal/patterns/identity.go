package patterns

import (
	"regexp"

	"github.com/datahunter/datahunter/internal/types"
	v "github.com/datahunter/datahunter/internal/validate"
)

var identityPatterns = []*Pattern{
	{Category: types.CatSSN, Name: "us_ssn", Description: "US social security number",
		re:    regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		valid: v.SSNGroups},
	{Category: types.CatAadhaar, Name: "aadhaar", Description: "Indian Aadhaar number",
		re: regexp.MustCompile(`\b[2-9][0-9]{3}\s[0-9]{4}\s[0-9]{4}\b`)},
	{Category: types.CatPAN, Name: "pan", Description: "Indian PAN tax identifier",
		re: regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)},
}
