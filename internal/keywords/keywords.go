// Package keywords provides the curated vocabulary of sensitivity-indicating
// terms used by the filename scanner.
package keywords

import (
	"sort"
	"strings"
)

// Domain groups related terms.
type Domain string

const (
	DomainIdentity    Domain = "identity"
	DomainFinancial   Domain = "financial"
	DomainHealth      Domain = "health"
	DomainCredentials Domain = "credentials"
	DomainLegal       Domain = "legal"
	DomainGeneric     Domain = "generic"
)

var builtin = map[Domain][]string{
	DomainIdentity: {
		"ssn", "social security", "passport", "driver license", "birth certificate",
		"aadhaar", "pan card", "voter id", "national id",
	},
	DomainFinancial: {
		"credit card", "debit card", "bank account", "routing number", "swift code",
		"payment", "invoice", "salary", "tax", "financial statement",
	},
	DomainHealth: {
		"medical", "health record", "prescription", "diagnosis", "patient",
		"hospital", "clinic", "doctor", "insurance",
	},
	DomainCredentials: {
		"password", "passphrase", "secret", "token", "api key", "private key",
		"certificate", "credential", "authentication",
	},
	DomainLegal: {
		"confidential", "proprietary", "classified", "restricted", "nda",
		"contract", "agreement", "legal", "lawsuit",
	},
	DomainGeneric: {
		"personal", "private", "sensitive", "internal", "do not share",
	},
}

// Index is an immutable set of lowercase terms grouped by domain.
type Index struct {
	terms    []string
	domainOf map[string]Domain
}

// New builds an index from domain term lists. Terms are lower-cased and
// trimmed; duplicates keep the first domain seen in sorted domain order.
func New(groups map[Domain][]string) *Index {
	idx := &Index{domainOf: map[string]Domain{}}
	domains := make([]string, 0, len(groups))
	for d := range groups {
		domains = append(domains, string(d))
	}
	sort.Strings(domains)
	for _, d := range domains {
		for _, t := range groups[Domain(d)] {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if _, ok := idx.domainOf[t]; ok {
				continue
			}
			idx.domainOf[t] = Domain(d)
			idx.terms = append(idx.terms, t)
		}
	}
	sort.Strings(idx.terms)
	return idx
}

var defaultIndex = New(builtin)

// Default returns the shared built-in index.
func Default() *Index { return defaultIndex }

// MatchAll returns, in sorted order, every term contained in name after
// lower-casing it.
func (x *Index) MatchAll(name string) []string {
	lower := strings.ToLower(name)
	var out []string
	for _, t := range x.terms {
		if strings.Contains(lower, t) {
			out = append(out, t)
		}
	}
	return out
}

// Terms returns all terms in sorted order.
func (x *Index) Terms() []string {
	out := make([]string, len(x.terms))
	copy(out, x.terms)
	return out
}

// DomainOf reports which domain a term belongs to.
func (x *Index) DomainOf(term string) (Domain, bool) {
	d, ok := x.domainOf[strings.ToLower(term)]
	return d, ok
}

// Domains returns the term lists keyed by domain.
func (x *Index) Domains() map[Domain][]string {
	out := map[Domain][]string{}
	for _, t := range x.terms {
		d := x.domainOf[t]
		out[d] = append(out[d], t)
	}
	return out
}

// Len returns the number of distinct terms.
func (x *Index) Len() int { return len(x.terms) }
