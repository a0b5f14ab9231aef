package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/repositories/inmem"
	"github.com/venturemate/marketplace-go/services"
	"github.com/venturemate/marketplace-go/types"
)

// TestFullLifecycle walks one project from creation to completion over the
// in-memory store and checks the derived state (availability flags, group
// membership, notifications) at every step.
func TestFullLifecycle(t *testing.T) {
	repos, _ := inmem.NewRepos()
	svc := services.New(repos, nil, nil)

	admin := types.Actor{UserID: 999, Role: models.RoleAdmin}

	// --- registration ---
	entUser, err := svc.User.Register(dto.RegisterDTO{
		Username: "founder", Password: "123456", Email: "founder@test.com", Role: "entrepreneur",
	})
	require.NoError(t, err)
	entActor := types.Actor{UserID: entUser.UID, Role: models.RoleEntrepreneur}

	var studentActors []types.Actor
	var studentIDs []uint
	for _, name := range []string{"s1", "s2", "s3"} {
		u, err := svc.User.Register(dto.RegisterDTO{
			Username: name, Password: "123456", Email: name + "@test.com", Role: "student",
		})
		require.NoError(t, err)
		studentActors = append(studentActors, types.Actor{UserID: u.UID, Role: models.RoleStudent})

		profile, err := repos.Student.GetStudentByUserID(u.UID)
		require.NoError(t, err)
		studentIDs = append(studentIDs, profile.SID)
	}

	// --- project creation: starts in New ---
	project, err := svc.Project.CreateProject(entActor, dto.CreateProjectDTO{Title: "Landing page", Price: 500})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNew, project.Status)

	// --- admin proposes all three students ---
	created, err := svc.Proposal.ProposeStudents(admin, project.PID, studentIDs)
	require.NoError(t, err)
	require.Len(t, created, 3)

	// a second proposal for the same student is rejected, first row kept
	_, err = svc.Proposal.ProposeStudents(admin, project.PID, []uint{studentIDs[0]})
	assert.True(t, apperrors.IsConflict(err))

	// --- New → Proposals Sent ---
	res, err := svc.Lifecycle.SendProposals(admin, project.PID)
	require.NoError(t, err)
	assert.Equal(t, []string{services.StepStatus}, res.Committed)

	// re-running the transition fails the status guard
	_, err = svc.Lifecycle.SendProposals(admin, project.PID)
	assert.True(t, apperrors.IsValidation(err))

	// --- students answer: two accept, one declines ---
	for i, accepted := range []bool{true, true, false} {
		_, err := svc.Proposal.RecordAcceptance(studentActors[i], created[i].ID, accepted)
		require.NoError(t, err)
	}

	// the answer is final
	_, err = svc.Proposal.RecordAcceptance(studentActors[2], created[2].ID, true)
	assert.True(t, apperrors.IsConflict(err))

	// --- Proposals Sent → Selection: shortlist the two acceptors ---
	shortlist := []uint{studentIDs[0], studentIDs[1]}
	res, err = svc.Lifecycle.OpenSelection(admin, project.PID, shortlist)
	require.NoError(t, err)
	assert.Contains(t, res.Committed, services.StepShortlist)
	assert.Contains(t, res.Committed, services.StepStatus)

	// the decliner cannot be shortlisted
	assertStatus(t, svc, project.PID, models.StatusSelection)
	assertAvailability(t, repos, studentIDs[0], false)
	assertAvailability(t, repos, studentIDs[1], false)
	assertAvailability(t, repos, studentIDs[2], true)

	// --- Selection → Payment: entrepreneur picks the winner ---
	res, err = svc.Lifecycle.SelectStudent(entActor, project.PID, studentIDs[0])
	require.NoError(t, err)
	assert.Equal(t,
		[]string{services.StepSelectedStudent, services.StepStatus, services.StepAvailability},
		res.Committed)

	assertStatus(t, svc, project.PID, models.StatusPayment)
	assertAvailability(t, repos, studentIDs[0], false)
	assertAvailability(t, repos, studentIDs[1], true, "loser is released")

	p, err := svc.Project.GetProject(project.PID)
	require.NoError(t, err)
	require.NotNil(t, p.SelectedStudentID)
	assert.Equal(t, studentIDs[0], *p.SelectedStudentID)

	// --- Payment → Active: winner joins the conversation ---
	res, err = svc.Lifecycle.ConfirmPayment(admin, project.PID)
	require.NoError(t, err)
	assert.Contains(t, res.Committed, services.StepMembership)

	assertStatus(t, svc, project.PID, models.StatusActive)

	group, err := svc.Messaging.GroupForProject(project.PID)
	require.NoError(t, err)
	members, err := repos.Message.ListMembers(group.GID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, studentActors[0].UserID, members[0].UserID)

	notes, err := svc.Messaging.Notifications(studentActors[0].UserID)
	require.NoError(t, err)
	assert.NotEmpty(t, notes, "winner is told work can begin")

	// --- Active → Completed: winner goes back on the market ---
	res, err = svc.Lifecycle.Complete(admin, project.PID)
	require.NoError(t, err)
	assert.Contains(t, res.Committed, services.StepAvailability)

	assertStatus(t, svc, project.PID, models.StatusCompleted)
	assertAvailability(t, repos, studentIDs[0], true)

	ownerNotes, err := svc.Messaging.Notifications(entActor.UserID)
	require.NoError(t, err)
	assert.NotEmpty(t, ownerNotes, "owner is prompted for a review")

	// terminal: no further transition applies
	_, err = svc.Lifecycle.Complete(admin, project.PID)
	assert.True(t, apperrors.IsValidation(err))
}

func TestOpenSelectionRejectsDecliner(t *testing.T) {
	repos, _ := inmem.NewRepos()
	svc := services.New(repos, nil, nil)

	admin := types.Actor{UserID: 999, Role: models.RoleAdmin}

	entUser, err := svc.User.Register(dto.RegisterDTO{
		Username: "founder", Password: "123456", Email: "founder@test.com", Role: "entrepreneur",
	})
	require.NoError(t, err)
	entActor := types.Actor{UserID: entUser.UID, Role: models.RoleEntrepreneur}

	stUser, err := svc.User.Register(dto.RegisterDTO{
		Username: "s1", Password: "123456", Email: "s1@test.com", Role: "student",
	})
	require.NoError(t, err)
	stActor := types.Actor{UserID: stUser.UID, Role: models.RoleStudent}
	profile, err := repos.Student.GetStudentByUserID(stUser.UID)
	require.NoError(t, err)

	project, err := svc.Project.CreateProject(entActor, dto.CreateProjectDTO{Title: "App"})
	require.NoError(t, err)

	created, err := svc.Proposal.ProposeStudents(admin, project.PID, []uint{profile.SID})
	require.NoError(t, err)

	_, err = svc.Lifecycle.SendProposals(admin, project.PID)
	require.NoError(t, err)

	_, err = svc.Proposal.RecordAcceptance(stActor, created[0].ID, false)
	require.NoError(t, err)

	_, err = svc.Lifecycle.OpenSelection(admin, project.PID, []uint{profile.SID})
	assert.True(t, apperrors.IsValidation(err))

	// decliner stays on the market and the project stays put
	assertAvailability(t, repos, profile.SID, true)
	assertStatus(t, svc, project.PID, models.StatusProposalsSent)
}

func assertStatus(t *testing.T, svc *services.Services, projectID uint, want models.ProjectStatus) {
	t.Helper()
	p, err := svc.Project.GetProject(projectID)
	require.NoError(t, err)
	assert.Equal(t, want, p.Status)
}

func assertAvailability(t *testing.T, repos *repositories.Repos, studentID uint, want bool, msg ...string) {
	t.Helper()
	st, err := repos.Student.GetStudentByID(studentID)
	require.NoError(t, err)
	args := make([]interface{}, len(msg))
	for i, m := range msg {
		args[i] = m
	}
	assert.Equal(t, want, st.Available, args...)
}
