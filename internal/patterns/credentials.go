package patterns

import (
	"regexp"

	"github.com/datahunter/datahunter/internal/types"
	v "github.com/datahunter/datahunter/internal/validate"
)

var secretPatterns = []*Pattern{
	{Category: types.CatAPIKeys, Name: "api_key_assignment", Description: "api_key = <32+ alnum>",
		re: regexp.MustCompile(`(?i)api[_-]?key["']?\s*[:=]\s*["']?([a-z0-9]{32,})`), group: 1},
	{Category: types.CatAPIKeys, Name: "access_token_assignment", Description: "access_token = <32+ alnum>",
		re: regexp.MustCompile(`(?i)access[_-]?token["']?\s*[:=]\s*["']?([a-z0-9]{32,})`), group: 1},
	{Category: types.CatAPIKeys, Name: "secret_key_assignment", Description: "secret_key = <32+ alnum>",
		re: regexp.MustCompile(`(?i)secret[_-]?key["']?\s*[:=]\s*["']?([a-z0-9]{32,})`), group: 1},
	{Category: types.CatAPIKeys, Name: "aws_access_key", Description: "AWS access key ID",
		re: regexp.MustCompile(`AKIA[0-9A-Z]{16}`), valid: v.LooksLikeAWSAccessKey},
	{Category: types.CatAPIKeys, Name: "github_token", Description: "GitHub personal access token",
		re: regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`), valid: v.LooksLikeGitHubToken},
}

var passwordPatterns = []*Pattern{
	{Category: types.CatPasswords, Name: "password", Description: "password assignment",
		re: regexp.MustCompile(`(?i)password\s*[:=]\s*["']?([^\s"']+)`), group: 1},
	{Category: types.CatPasswords, Name: "pwd", Description: "pwd assignment",
		re: regexp.MustCompile(`(?i)pwd\s*[:=]\s*["']?([^\s"']+)`), group: 1},
	{Category: types.CatPasswords, Name: "passwd", Description: "passwd assignment",
		re: regexp.MustCompile(`(?i)passwd\s*[:=]\s*["']?([^\s"']+)`), group: 1},
}

const privateKeyMarker = "Found private key"

var privateKeyPattern = &Pattern{
	Category: types.CatPrivateKeys, Name: "private_key_block", Description: "PEM private key header",
	re:     regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA )?PRIVATE KEY-----`),
	marker: privateKeyMarker,
}
