// SPDX-License-Identifier: MIT

package ledger

import (
	"sort"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Ledger holds industry membership and per-company facts.
//
// membership keeps industries in first-insertion order; facts is keyed by
// company name. mu guards both.
type Ledger struct {
	mu sync.RWMutex

	membership *orderedmap.OrderedMap[string, map[string]struct{}]
	facts      map[string]Fact
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{
		membership: orderedmap.New[string, map[string]struct{}](),
		facts:      make(map[string]Fact),
	}
}

// AddCompany lists company under industry and records its fact tuple.
//
// Membership is additive: a company re-added under another industry stays
// listed under the previous one as well. The fact tuple is overwritten.
// Complexity: O(1) amortized.
func (l *Ledger) AddCompany(company, industry string, year, layoffs uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	set, ok := l.membership.Get(industry)
	if !ok {
		set = make(map[string]struct{})
		l.membership.Set(industry, set)
	}
	set[company] = struct{}{}
	l.facts[company] = Fact{Layoffs: layoffs, Year: year}
}

// Fact returns the fact tuple recorded for company.
func (l *Ledger) Fact(company string) (Fact, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	f, ok := l.facts[company]

	return f, ok
}

// Industries returns industry names in first-insertion order.
func (l *Ledger) Industries() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.industriesLocked()
}

// Companies returns every company with a fact tuple, sorted ascending.
func (l *Ledger) Companies() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, 0, len(l.facts))
	for c := range l.facts {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of companies with a fact tuple.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.facts)
}

// Membership returns a deep copy of the ledger's industry membership, the
// usual view passed to the per-industry statistics queries.
func (l *Ledger) Membership() Membership {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(Membership, l.membership.Len())
	for pair := l.membership.Oldest(); pair != nil; pair = pair.Next() {
		set := make(map[string]struct{}, len(pair.Value))
		for c := range pair.Value {
			set[c] = struct{}{}
		}
		out[pair.Key] = set
	}

	return out
}

// industriesLocked lists industries in insertion order. Caller holds mu.
func (l *Ledger) industriesLocked() []string {
	out := make([]string, 0, l.membership.Len())
	for pair := l.membership.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// knownLayoffs collects the layoffs of companies that have a fact tuple.
// Caller holds mu.
func (l *Ledger) knownLayoffs(companies map[string]struct{}) []uint32 {
	out := make([]uint32, 0, len(companies))
	for c := range companies {
		if f, ok := l.facts[c]; ok {
			out = append(out, f.Layoffs)
		}
	}

	return out
}
