package validate

import "strings"

const (
	digits     = "0123456789"
	upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	base62     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// IsAlphabet returns true if all characters in s are in allowed set.
func IsAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is a non-empty run of ASCII digits.
func IsDigits(s string) bool { return IsAlphabet(s, digits) }

// SSNGroups reports whether s is an AAA-GG-SSSS number whose area, group and
// serial are all issuable: area 000, 666 and 900-999 are never assigned,
// nor is group 00 or serial 0000.
func SSNGroups(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 3 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return false
	}
	for _, p := range parts {
		if !IsDigits(p) {
			return false
		}
	}
	area := parts[0]
	if area == "000" || area == "666" || area[0] == '9' {
		return false
	}
	return parts[1] != "00" && parts[2] != "0000"
}

// LooksLikeAWSAccessKey checks for AKIA + 16 uppercase alnum.
func LooksLikeAWSAccessKey(s string) bool {
	if !strings.HasPrefix(s, "AKIA") || len(s) != 20 {
		return false
	}
	return IsAlphabet(s[4:], upperAlnum)
}

// LooksLikeGitHubToken accepts ghp_ followed by 36 base62 chars.
func LooksLikeGitHubToken(s string) bool {
	if !strings.HasPrefix(s, "ghp_") {
		return false
	}
	tail := s[4:]
	return len(tail) == 36 && IsAlphabet(tail, base62)
}
