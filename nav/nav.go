// Package nav derives the breadcrumb trail from the current selection and
// keeps the query-string surface (client slug + case type) used for deep
// links and copyable share links.
package nav

import (
	"net/url"

	"github.com/adviceworks/casedesk/clients"
)

// Tab identifies which pane of the client details view is showing.
type Tab string

const (
	TabDetails   Tab = "details"
	TabCases     Tab = "cases"
	TabChecklist Tab = "checklist"
)

// Crumb is one breadcrumb entry. The consumer renders the list and owns no
// logic about it.
type Crumb struct {
	Label    string
	IsActive bool
}

// Selection captures everything the breadcrumb trail depends on.
type Selection struct {
	Client   *clients.Record
	Tab      Tab
	CaseName string
}

// Breadcrumbs is a pure derivation of the trail from the selection. The
// final crumb is always the active one.
func Breadcrumbs(sel Selection) []Crumb {
	trail := []Crumb{{Label: "Clients"}}
	if sel.Client == nil {
		trail[0].IsActive = true
		return trail
	}
	trail = append(trail, Crumb{Label: sel.Client.Name})
	switch sel.Tab {
	case TabCases:
		trail = append(trail, Crumb{Label: "Cases"})
		if sel.CaseName != "" {
			trail = append(trail, Crumb{Label: sel.CaseName})
		}
	case TabChecklist:
		trail = append(trail, Crumb{Label: "Checklist Review"})
	}
	trail[len(trail)-1].IsActive = true
	return trail
}

// Emitter forwards breadcrumb changes upward, suppressing emissions whose
// trail is shallow-equal (label and active flag) to the previous one so the
// consumer is not re-rendered redundantly.
type Emitter struct {
	last     []Crumb
	onChange func([]Crumb)
}

// NewEmitter wires the consumer callback. A nil callback yields an emitter
// that only tracks state.
func NewEmitter(onChange func([]Crumb)) *Emitter {
	return &Emitter{onChange: onChange}
}

// Emit recomputes the trail for sel and forwards it when it differs from the
// previous emission. It reports whether a forward happened.
func (e *Emitter) Emit(sel Selection) bool {
	trail := Breadcrumbs(sel)
	if crumbsEqual(e.last, trail) {
		return false
	}
	e.last = trail
	if e.onChange != nil {
		e.onChange(trail)
	}
	return true
}

// Last returns the most recently emitted trail.
func (e *Emitter) Last() []Crumb {
	return append([]Crumb(nil), e.last...)
}

func crumbsEqual(a, b []Crumb) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Label != b[i].Label || a[i].IsActive != b[i].IsActive {
			return false
		}
	}
	return true
}

// Query keys for the share-link surface.
const (
	queryKeyClient = "client"
	queryKeyCase   = "case"
)

// EncodeQuery renders the selection as a query string, e.g.
// "client=margaret-holloway&case=Pension+Transfer". Empty parts are omitted.
func EncodeQuery(clientSlug, caseType string) string {
	q := url.Values{}
	if clientSlug != "" {
		q.Set(queryKeyClient, clientSlug)
	}
	if caseType != "" {
		q.Set(queryKeyCase, caseType)
	}
	return q.Encode()
}

// DecodeQuery parses a query string back into its parts. Malformed input
// decodes to empty parts; a deep link that cannot be parsed just lands on
// the client list.
func DecodeQuery(raw string) (clientSlug, caseType string) {
	q, err := url.ParseQuery(raw)
	if err != nil {
		return "", ""
	}
	return q.Get(queryKeyClient), q.Get(queryKeyCase)
}
