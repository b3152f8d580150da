package report

import (
	"unicode/utf8"

	"github.com/datahunter/datahunter/internal/types"
)

// MaskContent returns a copy of c with every matched value masked, for output
// that may be stored or shared.
func MaskContent(c types.ContentScanResult) types.ContentScanResult {
	out := c
	out.Findings = make(map[types.Category][]string, len(c.Findings))
	for cat, ms := range c.Findings {
		masked := make([]string, len(ms))
		for i, m := range ms {
			if cat == types.CatPrivateKeys {
				masked[i] = m
				continue
			}
			masked[i] = maskValue(m)
		}
		out.Findings[cat] = masked
	}
	return out
}

// Mask applies MaskContent to the content inside v, if any.
func Mask(v any) any {
	switch r := v.(type) {
	case types.ContentScanResult:
		return MaskContent(r)
	case *types.ContentScanResult:
		m := MaskContent(*r)
		return &m
	case types.ComprehensiveScanResult:
		if r.Content != nil {
			m := MaskContent(*r.Content)
			r.Content = &m
		}
		return r
	case *types.ComprehensiveScanResult:
		return Mask(*r)
	}
	return v
}

func maskValue(s string) string {
	if utf8.RuneCountInString(s) <= 8 {
		return "********"
	}
	r := []rune(s)
	return string(r[:2]) + "…" + string(r[len(r)-2:])
}
