package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/repositories/mock_repositories"
	"gorm.io/gorm"
)

type lifecycleMocks struct {
	project         *mock_repositories.MockProjectRepo
	student         *mock_repositories.MockStudentRepo
	entrepreneur    *mock_repositories.MockEntrepreneurRepo
	proposal        *mock_repositories.MockProposalRepo
	proposedStudent *mock_repositories.MockProposedStudentRepo
	message         *mock_repositories.MockMessageRepo
	audit           *mock_repositories.MockAuditRepo
}

func setupLifecycleServiceMocks(t *testing.T) (*LifecycleService, lifecycleMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := lifecycleMocks{
		project:         mock_repositories.NewMockProjectRepo(ctrl),
		student:         mock_repositories.NewMockStudentRepo(ctrl),
		entrepreneur:    mock_repositories.NewMockEntrepreneurRepo(ctrl),
		proposal:        mock_repositories.NewMockProposalRepo(ctrl),
		proposedStudent: mock_repositories.NewMockProposedStudentRepo(ctrl),
		message:         mock_repositories.NewMockMessageRepo(ctrl),
		audit:           mock_repositories.NewMockAuditRepo(ctrl),
	}
	repos := &repositories.Repos{
		Project:         m.project,
		Student:         m.student,
		Entrepreneur:    m.entrepreneur,
		Proposal:        m.proposal,
		ProposedStudent: m.proposedStudent,
		Message:         m.message,
		Audit:           m.audit,
	}
	m.audit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil).AnyTimes()

	availability := NewAvailabilityService(repos)
	messaging := NewMessagingService(repos, nil)
	audit := NewAuditService(repos)
	return NewLifecycleService(repos, availability, messaging, audit), m
}

// --------------------- SendProposals ---------------------

func TestSendProposals_Success(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).Return(models.Project{PID: 1, Status: models.StatusNew}, nil)
	m.proposal.EXPECT().CountProposalsByProject(uint(1)).Return(int64(2), nil)
	m.project.EXPECT().UpdateStatus(uint(1), models.StatusNew, models.StatusProposalsSent).Return(true, nil)

	res, err := svc.SendProposals(admin, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{StepStatus}, res.Committed)
}

func TestSendProposals_RoleGate(t *testing.T) {
	svc, _ := setupLifecycleServiceMocks(t)

	_, err := svc.SendProposals(entrepreneur, 1)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestSendProposals_WrongStatus(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).Return(models.Project{PID: 1, Status: models.StatusSelection}, nil)

	res, err := svc.SendProposals(admin, 1)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, res.Committed)
}

func TestSendProposals_NoProposals(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).Return(models.Project{PID: 1, Status: models.StatusNew}, nil)
	m.proposal.EXPECT().CountProposalsByProject(uint(1)).Return(int64(0), nil)

	_, err := svc.SendProposals(admin, 1)
	assert.True(t, apperrors.IsValidation(err))
}

// A concurrent transition steals the status row between the read and the
// write; the compare-and-set reports it as a conflict.
func TestSendProposals_LostRace(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).Return(models.Project{PID: 1, Status: models.StatusNew}, nil)
	m.proposal.EXPECT().CountProposalsByProject(uint(1)).Return(int64(1), nil)
	m.project.EXPECT().UpdateStatus(uint(1), models.StatusNew, models.StatusProposalsSent).Return(false, nil)

	res, err := svc.SendProposals(admin, 1)
	assert.True(t, apperrors.IsConflict(err))
	assert.Empty(t, res.Committed)
}

// --------------------- OpenSelection ---------------------

func acceptedProposal(projectID, studentID uint) models.Proposal {
	yes := true
	return models.Proposal{ProjectID: projectID, StudentID: studentID, Accepted: &yes}
}

func TestOpenSelection_Success(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, EntrepreneurID: 4, Status: models.StatusProposalsSent}, nil)
	m.proposal.EXPECT().ListAcceptedByProject(uint(1)).
		Return([]models.Proposal{acceptedProposal(1, 10), acceptedProposal(1, 11)}, nil)
	m.proposedStudent.EXPECT().CreateProposedStudent(gomock.Any()).Return(nil).Times(2)
	m.student.EXPECT().SetAvailability([]uint{10, 11}, false).Return(nil)
	m.project.EXPECT().UpdateStatus(uint(1), models.StatusProposalsSent, models.StatusSelection).Return(true, nil)

	// entrepreneur notification
	m.entrepreneur.EXPECT().GetEntrepreneurByID(uint(4)).Return(models.Entrepreneur{EID: 4, UserID: 2}, nil)
	m.message.EXPECT().GetOrCreateGroupByProject(uint(1)).Return(models.MessageGroup{GID: 20, ProjectID: 1}, nil)
	m.message.EXPECT().CreateMessage(gomock.Any()).Return(nil)

	res, err := svc.OpenSelection(admin, 1, []uint{10, 11})
	assert.NoError(t, err)
	assert.Equal(t, []string{StepShortlist, StepAvailability, StepStatus, StepNotify}, res.Committed)
}

func TestOpenSelection_StudentDidNotAccept(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, Status: models.StatusProposalsSent}, nil)
	m.proposal.EXPECT().ListAcceptedByProject(uint(1)).
		Return([]models.Proposal{acceptedProposal(1, 10)}, nil)

	res, err := svc.OpenSelection(admin, 1, []uint{10, 12})
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, res.Committed)
}

// Availability failing mid-chain leaves the shortlist committed: the caller
// sees exactly how far the transition got and nothing is rolled back.
func TestOpenSelection_PartialFailure(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, Status: models.StatusProposalsSent}, nil)
	m.proposal.EXPECT().ListAcceptedByProject(uint(1)).
		Return([]models.Proposal{acceptedProposal(1, 10)}, nil)
	m.proposedStudent.EXPECT().CreateProposedStudent(gomock.Any()).Return(nil)
	m.student.EXPECT().SetAvailability([]uint{10}, false).Return(errors.New("db down"))

	res, err := svc.OpenSelection(admin, 1, []uint{10})
	assert.Error(t, err)
	assert.Equal(t, []string{StepShortlist}, res.Committed)
}

// --------------------- SelectStudent ---------------------

func TestSelectStudent_Success(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, EntrepreneurID: 4, Status: models.StatusSelection}, nil)
	m.entrepreneur.EXPECT().GetEntrepreneurByUserID(entrepreneur.UserID).
		Return(models.Entrepreneur{EID: 4, UserID: entrepreneur.UserID}, nil)
	m.proposedStudent.EXPECT().ListProposedByProject(uint(1)).
		Return([]models.ProposedStudent{
			{ProjectID: 1, StudentID: 10},
			{ProjectID: 1, StudentID: 11},
			{ProjectID: 1, StudentID: 12},
		}, nil)
	m.project.EXPECT().SetSelectedStudent(uint(1), uint(11)).Return(nil)
	m.project.EXPECT().UpdateStatus(uint(1), models.StatusSelection, models.StatusPayment).Return(true, nil)
	gomock.InOrder(
		m.student.EXPECT().SetAvailability([]uint{11}, false).Return(nil),
		m.student.EXPECT().SetAvailability([]uint{10, 12}, true).Return(nil),
	)

	res, err := svc.SelectStudent(entrepreneur, 1, 11)
	assert.NoError(t, err)
	assert.Equal(t, []string{StepSelectedStudent, StepStatus, StepAvailability}, res.Committed)
}

func TestSelectStudent_NotOnShortlist(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, EntrepreneurID: 4, Status: models.StatusSelection}, nil)
	m.entrepreneur.EXPECT().GetEntrepreneurByUserID(entrepreneur.UserID).
		Return(models.Entrepreneur{EID: 4, UserID: entrepreneur.UserID}, nil)
	m.proposedStudent.EXPECT().ListProposedByProject(uint(1)).
		Return([]models.ProposedStudent{{ProjectID: 1, StudentID: 10}}, nil)

	res, err := svc.SelectStudent(entrepreneur, 1, 99)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, res.Committed)
}

func TestSelectStudent_NotOwner(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, EntrepreneurID: 4, Status: models.StatusSelection}, nil)
	m.entrepreneur.EXPECT().GetEntrepreneurByUserID(entrepreneur.UserID).
		Return(models.Entrepreneur{EID: 77, UserID: entrepreneur.UserID}, nil)

	_, err := svc.SelectStudent(entrepreneur, 1, 10)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestSelectStudent_RoleGate(t *testing.T) {
	svc, _ := setupLifecycleServiceMocks(t)

	_, err := svc.SelectStudent(admin, 1, 10)
	assert.True(t, apperrors.IsUnauthorized(err))
}

// --------------------- ConfirmPayment ---------------------

func TestConfirmPayment_Success(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	winner := uint(11)
	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, Status: models.StatusPayment, SelectedStudentID: &winner}, nil)
	m.student.EXPECT().GetStudentByID(winner).Return(models.Student{SID: 11, UserID: 3}, nil)
	m.project.EXPECT().UpdateStatus(uint(1), models.StatusPayment, models.StatusActive).Return(true, nil)

	// membership plus the two notifications all resolve the project group
	m.message.EXPECT().GetOrCreateGroupByProject(uint(1)).
		Return(models.MessageGroup{GID: 20, ProjectID: 1}, nil).Times(3)
	m.message.EXPECT().AddMember(uint(20), uint(3)).Return(nil)
	m.message.EXPECT().CreateMessage(gomock.Any()).Return(nil).Times(2)

	res, err := svc.ConfirmPayment(admin, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{StepStatus, StepMembership, StepNotify}, res.Committed)
}

// Notification delivery is best-effort: a failed system message does not fail
// the transition, it only leaves the notify step uncommitted.
func TestConfirmPayment_NotifyFailureNonFatal(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	winner := uint(11)
	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, Status: models.StatusPayment, SelectedStudentID: &winner}, nil)
	m.student.EXPECT().GetStudentByID(winner).Return(models.Student{SID: 11, UserID: 3}, nil)
	m.project.EXPECT().UpdateStatus(uint(1), models.StatusPayment, models.StatusActive).Return(true, nil)

	m.message.EXPECT().GetOrCreateGroupByProject(uint(1)).
		Return(models.MessageGroup{GID: 20, ProjectID: 1}, nil).Times(2)
	m.message.EXPECT().AddMember(uint(20), uint(3)).Return(nil)
	m.message.EXPECT().CreateMessage(gomock.Any()).Return(errors.New("store down"))

	res, err := svc.ConfirmPayment(admin, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{StepStatus, StepMembership}, res.Committed)
}

func TestConfirmPayment_NoSelectedStudent(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, Status: models.StatusPayment}, nil)

	_, err := svc.ConfirmPayment(admin, 1)
	assert.True(t, apperrors.IsValidation(err))
}

// --------------------- Complete ---------------------

func TestComplete_Success(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	winner := uint(11)
	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, EntrepreneurID: 4, Status: models.StatusActive, SelectedStudentID: &winner}, nil)
	m.project.EXPECT().UpdateStatus(uint(1), models.StatusActive, models.StatusCompleted).Return(true, nil)

	m.entrepreneur.EXPECT().GetEntrepreneurByID(uint(4)).Return(models.Entrepreneur{EID: 4, UserID: 2}, nil)
	m.student.EXPECT().GetStudentByID(winner).Return(models.Student{SID: 11, UserID: 3}, nil)
	m.message.EXPECT().GetOrCreateGroupByProject(uint(1)).
		Return(models.MessageGroup{GID: 20, ProjectID: 1}, nil).Times(2)
	m.message.EXPECT().CreateMessage(gomock.Any()).Return(nil).Times(2)

	m.student.EXPECT().SetAvailability([]uint{11}, true).Return(nil)

	res, err := svc.Complete(admin, 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{StepStatus, StepNotify, StepAvailability}, res.Committed)
}

func TestComplete_WrongStatus(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	winner := uint(11)
	m.project.EXPECT().GetProjectByID(uint(1)).
		Return(models.Project{PID: 1, Status: models.StatusPayment, SelectedStudentID: &winner}, nil)

	_, err := svc.Complete(admin, 1)
	assert.True(t, apperrors.IsValidation(err))
}

func TestLoadProject_NotFound(t *testing.T) {
	svc, m := setupLifecycleServiceMocks(t)

	m.project.EXPECT().GetProjectByID(uint(9)).Return(models.Project{}, gorm.ErrRecordNotFound)

	_, err := svc.SendProposals(admin, 9)
	assert.True(t, apperrors.IsNotFound(err))
}
