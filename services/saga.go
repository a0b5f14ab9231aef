package services

import "github.com/venturemate/marketplace-go/models"

// Step names recorded in TransitionResult.Committed, in commit order.
const (
	StepShortlist       = "shortlist"
	StepAvailability    = "availability"
	StepSelectedStudent = "selected_student"
	StepStatus          = "status"
	StepMembership      = "membership"
	StepNotify          = "notify"
)

// TransitionResult reports which writes of a lifecycle transition committed.
// There is no transaction around a transition: when a later step fails, the
// earlier steps stay applied and the caller re-drives the action after
// re-reading state. Committed preserves commit order.
type TransitionResult struct {
	ProjectID uint                 `json:"project_id"`
	From      models.ProjectStatus `json:"from"`
	To        models.ProjectStatus `json:"to"`
	Committed []string             `json:"committed"`
}

func (r *TransitionResult) commit(step string) {
	r.Committed = append(r.Committed, step)
}
