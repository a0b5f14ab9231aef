package services

import (
	"errors"

	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/types"
	"gorm.io/gorm"
)

type ProposalService struct {
	Repos *repositories.Repos
}

func NewProposalService(repos *repositories.Repos) *ProposalService {
	return &ProposalService{Repos: repos}
}

// ProposeStudents records one proposal per student with acceptance pending.
// Inserts run sequentially; a duplicate (project, student) pair aborts the
// remaining inserts with a conflict and already-created rows stay in place.
func (s *ProposalService) ProposeStudents(actor types.Actor, projectID uint, studentIDs []uint) ([]models.Proposal, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}
	if len(studentIDs) == 0 {
		return nil, apperrors.New(apperrors.KindValidation, "no students given")
	}

	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "project not found")
		}
		return nil, apperrors.Wrap(apperrors.KindRemote, "load project", err)
	}

	created := make([]models.Proposal, 0, len(studentIDs))
	for _, sid := range studentIDs {
		if _, err := s.Repos.Student.GetStudentByID(sid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return created, apperrors.Newf(apperrors.KindNotFound, "student %d not found", sid)
			}
			return created, apperrors.Wrap(apperrors.KindRemote, "load student", err)
		}

		proposal := models.Proposal{ProjectID: projectID, StudentID: sid}
		if err := s.Repos.Proposal.CreateProposal(&proposal); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return created, apperrors.Newf(apperrors.KindConflict, "student %d already proposed for project %d", sid, projectID)
			}
			return created, apperrors.Wrap(apperrors.KindRemote, "create proposal", err)
		}
		created = append(created, proposal)
	}
	return created, nil
}

// RecordAcceptance settles a pending proposal. The answer is final: a second
// write on a settled proposal is rejected as a conflict.
func (s *ProposalService) RecordAcceptance(actor types.Actor, proposalID uint, accepted bool) (models.Proposal, error) {
	if !actor.IsStudent() {
		return models.Proposal{}, apperrors.New(apperrors.KindUnauthorized, "student role required")
	}

	proposal, err := s.Repos.Proposal.GetProposalByID(proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Proposal{}, apperrors.New(apperrors.KindNotFound, "proposal not found")
		}
		return models.Proposal{}, apperrors.Wrap(apperrors.KindRemote, "load proposal", err)
	}

	student, err := s.Repos.Student.GetStudentByUserID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Proposal{}, apperrors.New(apperrors.KindNotFound, "student profile not found")
		}
		return models.Proposal{}, apperrors.Wrap(apperrors.KindRemote, "load student profile", err)
	}
	if proposal.StudentID != student.SID {
		return models.Proposal{}, apperrors.New(apperrors.KindUnauthorized, "proposal belongs to another student")
	}
	if !proposal.Pending() {
		return models.Proposal{}, apperrors.New(apperrors.KindConflict, "proposal already answered")
	}

	if err := s.Repos.Proposal.SetAcceptance(proposalID, accepted); err != nil {
		return models.Proposal{}, apperrors.Wrap(apperrors.KindRemote, "record acceptance", err)
	}
	proposal.Accepted = &accepted
	return proposal, nil
}

func (s *ProposalService) ProjectProposals(actor types.Actor, projectID uint) ([]models.Proposal, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}
	proposals, err := s.Repos.Proposal.ListProposalsByProject(projectID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRemote, "list proposals", err)
	}
	return proposals, nil
}

// MyProposals lists the invitations addressed to the calling student.
func (s *ProposalService) MyProposals(actor types.Actor) ([]models.Proposal, error) {
	if !actor.IsStudent() {
		return nil, apperrors.New(apperrors.KindUnauthorized, "student role required")
	}
	student, err := s.Repos.Student.GetStudentByUserID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "student profile not found")
		}
		return nil, apperrors.Wrap(apperrors.KindRemote, "load student profile", err)
	}
	proposals, err := s.Repos.Proposal.ListProposalsByStudent(student.SID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRemote, "list proposals", err)
	}
	return proposals, nil
}

// Shortlist returns the entrepreneur-facing candidate list for a project.
func (s *ProposalService) Shortlist(projectID uint) ([]models.ProposedStudent, error) {
	shortlisted, err := s.Repos.ProposedStudent.ListProposedByProject(projectID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindRemote, "list shortlist", err)
	}
	return shortlisted, nil
}
