// Package clients holds the advisory client records shown in the case list,
// their slug-based display identity, and the stores that back the client API.
package clients

import "github.com/google/uuid"

// Record is one client row in the case-management list. Records are
// read-mostly: edits replace the record wholesale, there is no partial-field
// diffing.
type Record struct {
	ID             uuid.UUID `json:"id"`
	Advisor        string    `json:"advisor"`
	Name           string    `json:"name"`
	Date           string    `json:"date"`
	CaseType       string    `json:"caseType"`
	PlanCount      int       `json:"planCount"`
	PlansComplete  int       `json:"plansComplete"`
	ChecklistDone  int       `json:"checklistDone"`
	ChecklistTotal int       `json:"checklistTotal"`
}

// Slug returns the record's display slug. Identity for selection and routing
// is the ID; the slug is a lossy affordance for URLs and copy links.
func (r Record) Slug() string {
	return Slugify(r.Name)
}
