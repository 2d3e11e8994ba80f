package presignup

import (
	"errors"
	"strings"
)

// ErrDomainNotAccepted is the explicit rejection signal of the gate. Callers
// match on it instead of inspecting error text.
var ErrDomainNotAccepted = errors.New("Email domain is not accepted")

// Decision is the outcome of an allowed registration attempt.
type Decision struct {
	AutoConfirm     bool
	AutoVerifyEmail bool
}

// Gate decides whether a candidate email may register, before the provider
// is contacted. Evaluation is deterministic for a given configuration.
type Gate struct {
	autoConfirmedEmails map[string]struct{}
	acceptedDomains     map[string]struct{}
	acceptAllDomains    bool
}

func NewGate(autoConfirmedEmails, acceptedDomains []string) *Gate {
	gate := &Gate{
		autoConfirmedEmails: make(map[string]struct{}, len(autoConfirmedEmails)),
		acceptedDomains:     make(map[string]struct{}, len(acceptedDomains)),
	}
	for _, email := range autoConfirmedEmails {
		gate.autoConfirmedEmails[strings.ToLower(email)] = struct{}{}
	}
	for _, domain := range acceptedDomains {
		if domain == "*" {
			gate.acceptAllDomains = true
			continue
		}
		gate.acceptedDomains[strings.ToLower(domain)] = struct{}{}
	}
	return gate
}

// Evaluate applies the decision policy in order: auto-confirm list first,
// then the accepted-domain set, then rejection.
func (g *Gate) Evaluate(email string) (Decision, error) {
	normalized := strings.ToLower(email)

	if _, ok := g.autoConfirmedEmails[normalized]; ok {
		return Decision{AutoConfirm: true, AutoVerifyEmail: true}, nil
	}

	_, domain, found := strings.Cut(normalized, "@")
	if g.acceptAllDomains {
		return Decision{}, nil
	}
	if found {
		if _, ok := g.acceptedDomains[domain]; ok {
			return Decision{}, nil
		}
	}

	return Decision{}, ErrDomainNotAccepted
}
