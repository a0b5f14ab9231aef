package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/types"
	"gorm.io/gorm"
)

// LifecycleService drives a project through its six lifecycle steps. Every
// transition is a chain of independent store writes executed in program
// order: a failed step aborts the chain and surfaces the error, committed
// steps are never compensated. TransitionResult tells the caller exactly how
// far the chain got.
//
// Two actors starting a transition from the same source state can still race;
// the compare-and-set status write turns the losing side into a conflict
// instead of silently overwriting.
type LifecycleService struct {
	Repos        *repositories.Repos
	Availability *AvailabilityService
	Messaging    *MessagingService
	Audit        *AuditService
}

func NewLifecycleService(repos *repositories.Repos, availability *AvailabilityService, messaging *MessagingService, audit *AuditService) *LifecycleService {
	return &LifecycleService{
		Repos:        repos,
		Availability: availability,
		Messaging:    messaging,
		Audit:        audit,
	}
}

func (s *LifecycleService) loadProject(projectID uint) (models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.New(apperrors.KindNotFound, "project not found")
		}
		return models.Project{}, apperrors.Wrap(apperrors.KindRemote, "load project", err)
	}
	return project, nil
}

func requireStatus(project models.Project, want models.ProjectStatus) error {
	if project.Status != want {
		return apperrors.Newf(apperrors.KindValidation,
			"project is %s, expected %s", project.Status.Label(), want.Label())
	}
	return nil
}

// setStatus performs the compare-and-set status write shared by every
// transition and records it on the result.
func (s *LifecycleService) setStatus(res *TransitionResult) error {
	ok, err := s.Repos.Project.UpdateStatus(res.ProjectID, res.From, res.To)
	if err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "update project status", err)
	}
	if !ok {
		return apperrors.Newf(apperrors.KindConflict,
			"project left %s concurrently", res.From.Label())
	}
	res.commit(StepStatus)
	return nil
}

// notify runs a messaging side effect. Delivery failure never aborts a
// transition; it is logged and the step is simply not recorded as committed.
func (s *LifecycleService) notify(res *TransitionResult, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("lifecycle: notification for project %d failed: %v", res.ProjectID, err)
		return
	}
	res.commit(StepNotify)
}

// SendProposals advances New → ProposalsSent once at least one proposal row
// exists for the project.
func (s *LifecycleService) SendProposals(actor types.Actor, projectID uint) (TransitionResult, error) {
	res := TransitionResult{ProjectID: projectID, From: models.StatusNew, To: models.StatusProposalsSent}
	if !actor.IsAdmin() {
		return res, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}

	project, err := s.loadProject(projectID)
	if err != nil {
		return res, err
	}
	if err := requireStatus(project, models.StatusNew); err != nil {
		return res, err
	}

	count, err := s.Repos.Proposal.CountProposalsByProject(projectID)
	if err != nil {
		return res, apperrors.Wrap(apperrors.KindRemote, "count proposals", err)
	}
	if count == 0 {
		return res, apperrors.New(apperrors.KindValidation, "no proposals recorded for project")
	}

	if err := s.setStatus(&res); err != nil {
		return res, err
	}
	s.Audit.Record(actor, "send_proposals", "project", fmt.Sprintf("p_id=%d", projectID), project.Status, res.To)
	return res, nil
}

// OpenSelection advances ProposalsSent → Selection: the given students (all of
// whom must have accepted their proposal) become the entrepreneur-facing
// shortlist and are taken off the market, then the entrepreneur is notified.
func (s *LifecycleService) OpenSelection(actor types.Actor, projectID uint, studentIDs []uint) (TransitionResult, error) {
	res := TransitionResult{ProjectID: projectID, From: models.StatusProposalsSent, To: models.StatusSelection}
	if !actor.IsAdmin() {
		return res, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}

	project, err := s.loadProject(projectID)
	if err != nil {
		return res, err
	}
	if err := requireStatus(project, models.StatusProposalsSent); err != nil {
		return res, err
	}

	accepted, err := s.Repos.Proposal.ListAcceptedByProject(projectID)
	if err != nil {
		return res, apperrors.Wrap(apperrors.KindRemote, "list accepted proposals", err)
	}
	if len(accepted) == 0 {
		return res, apperrors.New(apperrors.KindValidation, "no accepted proposals for project")
	}
	acceptedSet := make(map[uint]bool, len(accepted))
	for _, p := range accepted {
		acceptedSet[p.StudentID] = true
	}

	if len(studentIDs) == 0 {
		return res, apperrors.New(apperrors.KindValidation, "no students given")
	}
	for _, sid := range studentIDs {
		if !acceptedSet[sid] {
			return res, apperrors.Newf(apperrors.KindValidation, "student %d has not accepted a proposal", sid)
		}
	}

	for _, sid := range studentIDs {
		ps := models.ProposedStudent{ProjectID: projectID, StudentID: sid}
		if err := s.Repos.ProposedStudent.CreateProposedStudent(&ps); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return res, apperrors.Newf(apperrors.KindConflict, "student %d already shortlisted", sid)
			}
			return res, apperrors.Wrap(apperrors.KindRemote, "create shortlist entry", err)
		}
	}
	res.commit(StepShortlist)

	if err := s.Availability.Resolve(Shortlisted{StudentIDs: studentIDs}); err != nil {
		return res, err
	}
	res.commit(StepAvailability)

	if err := s.setStatus(&res); err != nil {
		return res, err
	}

	s.notify(&res, func() error {
		owner, err := s.Repos.Entrepreneur.GetEntrepreneurByID(project.EntrepreneurID)
		if err != nil {
			return err
		}
		return s.Messaging.SendDirectNotification(owner.UserID,
			"Candidates are ready for your review.", projectID)
	})

	s.Audit.Record(actor, "open_selection", "project", fmt.Sprintf("p_id=%d", projectID), res.From, res.To)
	return res, nil
}

// SelectStudent is the only entrepreneur-driven transition: Selection →
// Payment. The winner is recorded on the project, then the shortlist minus
// the winner is released.
func (s *LifecycleService) SelectStudent(actor types.Actor, projectID, studentID uint) (TransitionResult, error) {
	res := TransitionResult{ProjectID: projectID, From: models.StatusSelection, To: models.StatusPayment}
	if !actor.IsEntrepreneur() {
		return res, apperrors.New(apperrors.KindUnauthorized, "entrepreneur role required")
	}

	project, err := s.loadProject(projectID)
	if err != nil {
		return res, err
	}

	owner, err := s.Repos.Entrepreneur.GetEntrepreneurByUserID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, apperrors.New(apperrors.KindNotFound, "entrepreneur profile not found")
		}
		return res, apperrors.Wrap(apperrors.KindRemote, "load entrepreneur profile", err)
	}
	if project.EntrepreneurID != owner.EID {
		return res, apperrors.New(apperrors.KindUnauthorized, "not the project owner")
	}
	if err := requireStatus(project, models.StatusSelection); err != nil {
		return res, err
	}

	shortlist, err := s.Repos.ProposedStudent.ListProposedByProject(projectID)
	if err != nil {
		return res, apperrors.Wrap(apperrors.KindRemote, "list shortlist", err)
	}
	losers := make([]uint, 0, len(shortlist))
	found := false
	for _, ps := range shortlist {
		if ps.StudentID == studentID {
			found = true
			continue
		}
		losers = append(losers, ps.StudentID)
	}
	if !found {
		return res, apperrors.Newf(apperrors.KindValidation, "student %d is not on the shortlist", studentID)
	}

	if err := s.Repos.Project.SetSelectedStudent(projectID, studentID); err != nil {
		return res, apperrors.Wrap(apperrors.KindRemote, "record selected student", err)
	}
	res.commit(StepSelectedStudent)

	if err := s.setStatus(&res); err != nil {
		return res, err
	}

	if err := s.Availability.Resolve(Selected{WinnerID: studentID, LoserIDs: losers}); err != nil {
		return res, err
	}
	res.commit(StepAvailability)

	s.Audit.Record(actor, "select_student", "project", fmt.Sprintf("p_id=%d", projectID), res.From, res.To)
	return res, nil
}

// ConfirmPayment advances Payment → Active. The selected student joins the
// project conversation here, and both the group and the student are told that
// work may begin.
func (s *LifecycleService) ConfirmPayment(actor types.Actor, projectID uint) (TransitionResult, error) {
	res := TransitionResult{ProjectID: projectID, From: models.StatusPayment, To: models.StatusActive}
	if !actor.IsAdmin() {
		return res, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}

	project, err := s.loadProject(projectID)
	if err != nil {
		return res, err
	}
	if err := requireStatus(project, models.StatusPayment); err != nil {
		return res, err
	}
	if project.SelectedStudentID == nil {
		return res, apperrors.New(apperrors.KindValidation, "project has no selected student")
	}

	student, err := s.Repos.Student.GetStudentByID(*project.SelectedStudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, apperrors.New(apperrors.KindNotFound, "selected student not found")
		}
		return res, apperrors.Wrap(apperrors.KindRemote, "load selected student", err)
	}

	if err := s.setStatus(&res); err != nil {
		return res, err
	}

	if err := s.Messaging.AddProjectMember(projectID, student.UserID); err != nil {
		return res, err
	}
	res.commit(StepMembership)

	s.notify(&res, func() error {
		if _, err := s.Messaging.SendMessage(projectID, SystemSenderID,
			"Payment confirmed. Work on the project can begin."); err != nil {
			return err
		}
		return s.Messaging.SendDirectNotification(student.UserID,
			"Payment received: you can start working on the project.", projectID)
	})

	s.Audit.Record(actor, "confirm_payment", "project", fmt.Sprintf("p_id=%d", projectID), res.From, res.To)
	return res, nil
}

// Complete advances Active → Completed, prompts the entrepreneur for a
// review, congratulates the student and puts them back on the market.
func (s *LifecycleService) Complete(actor types.Actor, projectID uint) (TransitionResult, error) {
	res := TransitionResult{ProjectID: projectID, From: models.StatusActive, To: models.StatusCompleted}
	if !actor.IsAdmin() {
		return res, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}

	project, err := s.loadProject(projectID)
	if err != nil {
		return res, err
	}
	if err := requireStatus(project, models.StatusActive); err != nil {
		return res, err
	}
	if project.SelectedStudentID == nil {
		return res, apperrors.New(apperrors.KindValidation, "project has no selected student")
	}

	if err := s.setStatus(&res); err != nil {
		return res, err
	}

	s.notify(&res, func() error {
		owner, err := s.Repos.Entrepreneur.GetEntrepreneurByID(project.EntrepreneurID)
		if err != nil {
			return err
		}
		if err := s.Messaging.SendDirectNotification(owner.UserID,
			"The project is complete. Please leave a review for your student.", projectID); err != nil {
			return err
		}
		student, err := s.Repos.Student.GetStudentByID(*project.SelectedStudentID)
		if err != nil {
			return err
		}
		return s.Messaging.SendDirectNotification(student.UserID,
			"Congratulations, the project is complete!", projectID)
	})

	if err := s.Availability.Resolve(Completed{StudentID: *project.SelectedStudentID}); err != nil {
		return res, err
	}
	res.commit(StepAvailability)

	s.Audit.Record(actor, "complete", "project", fmt.Sprintf("p_id=%d", projectID), res.From, res.To)
	return res, nil
}
