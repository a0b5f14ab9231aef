package models

import "fmt"

// ProjectStatus is the persisted lifecycle step token. The wire value is an
// opaque STEPn token; the human-readable label lives only at the API boundary.
type ProjectStatus string

const (
	StatusNew           ProjectStatus = "STEP1"
	StatusProposalsSent ProjectStatus = "STEP2"
	StatusSelection     ProjectStatus = "STEP3"
	StatusPayment       ProjectStatus = "STEP4"
	StatusActive        ProjectStatus = "STEP5"
	StatusCompleted     ProjectStatus = "STEP6"
)

// StatusOrder lists the lifecycle steps in progression order.
var StatusOrder = []ProjectStatus{
	StatusNew,
	StatusProposalsSent,
	StatusSelection,
	StatusPayment,
	StatusActive,
	StatusCompleted,
}

var statusLabels = map[ProjectStatus]string{
	StatusNew:           "New",
	StatusProposalsSent: "Proposals",
	StatusSelection:     "Selection",
	StatusPayment:       "Payment",
	StatusActive:        "Active",
	StatusCompleted:     "Completed",
}

var labelStatuses = map[string]ProjectStatus{}

func init() {
	for token, label := range statusLabels {
		labelStatuses[label] = token
	}
}

func (s ProjectStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label for a step token.
func (s ProjectStatus) Label() string {
	return statusLabels[s]
}

// StatusFromLabel maps a display label back to its step token.
func StatusFromLabel(label string) (ProjectStatus, error) {
	s, ok := labelStatuses[label]
	if !ok {
		return "", fmt.Errorf("unknown project status label %q", label)
	}
	return s, nil
}

// Next returns the step that follows s, or false when s is terminal.
func (s ProjectStatus) Next() (ProjectStatus, bool) {
	for i, step := range StatusOrder {
		if step == s && i+1 < len(StatusOrder) {
			return StatusOrder[i+1], true
		}
	}
	return "", false
}
