package installer

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Outcome is the terminal state of a single install attempt.
type Outcome string

const (
	// OutcomeAlreadyPresent means the item was detected and nothing was run.
	OutcomeAlreadyPresent Outcome = "already-present"

	// OutcomeSucceeded means the install command exited successfully.
	OutcomeSucceeded Outcome = "succeeded"

	// OutcomeFailed covers a failing command, an unsupported platform and a stubbed MCP server.
	OutcomeFailed Outcome = "failed"

	// OutcomeUnknown means the name matched nothing in the catalog.
	OutcomeUnknown Outcome = "unknown"
)

// OK reports whether the item is installed after the attempt.
func (o Outcome) OK() bool {
	return o == OutcomeAlreadyPresent || o == OutcomeSucceeded
}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	return string(o)
}

// Results maps requested names to outcomes in request order.
// Recording a name again keeps its original position and replaces its outcome.
type Results struct {
	m *orderedmap.OrderedMap[string, Outcome]
}

// Entry is a single name and its outcome.
type Entry struct {
	Name    string  `json:"name"    yaml:"name"`
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	OK      bool    `json:"ok"      yaml:"ok"`
}

// NewResults returns an empty result set.
func NewResults() *Results {
	return &Results{m: orderedmap.New[string, Outcome]()}
}

// Set records the outcome for name.
func (r *Results) Set(name string, o Outcome) {
	r.m.Set(name, o)
}

// Get returns the outcome recorded for name.
func (r *Results) Get(name string) (Outcome, bool) {
	return r.m.Get(name)
}

// Len returns the number of distinct names.
func (r *Results) Len() int {
	return r.m.Len()
}

// Names returns the recorded names in order.
func (r *Results) Names() []string {
	names := make([]string, 0, r.m.Len())
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}

	return names
}

// Entries returns the recorded entries in order.
func (r *Results) Entries() []Entry {
	entries := make([]Entry, 0, r.m.Len())
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		entries = append(entries, Entry{Name: p.Key, Outcome: p.Value, OK: p.Value.OK()})
	}

	return entries
}

// Bools returns the plain name to success mapping.
func (r *Results) Bools() map[string]bool {
	out := make(map[string]bool, r.m.Len())
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		out[p.Key] = p.Value.OK()
	}

	return out
}

// AllOK reports whether every recorded item is installed.
func (r *Results) AllOK() bool {
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		if !p.Value.OK() {
			return false
		}
	}

	return true
}
