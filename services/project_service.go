package services

import (
	"errors"
	"fmt"

	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/types"
	"gorm.io/gorm"
)

type ProjectService struct {
	Repos *repositories.Repos
	Audit *AuditService
}

func NewProjectService(repos *repositories.Repos, audit *AuditService) *ProjectService {
	return &ProjectService{Repos: repos, Audit: audit}
}

// CreateProject starts a project in the New step, owned by the calling
// entrepreneur. Ownership never changes afterwards.
func (s *ProjectService) CreateProject(actor types.Actor, input dto.CreateProjectDTO) (models.Project, error) {
	if !actor.IsEntrepreneur() {
		return models.Project{}, apperrors.New(apperrors.KindUnauthorized, "entrepreneur role required")
	}
	owner, err := s.Repos.Entrepreneur.GetEntrepreneurByUserID(actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.New(apperrors.KindNotFound, "entrepreneur profile not found")
		}
		return models.Project{}, apperrors.Wrap(apperrors.KindRemote, "load entrepreneur profile", err)
	}

	project := models.Project{
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		EntrepreneurID: owner.EID,
		Status:         models.StatusNew,
	}
	if err := s.Repos.Project.CreateProject(&project); err != nil {
		return models.Project{}, apperrors.Wrap(apperrors.KindRemote, "create project", err)
	}
	s.Audit.Record(actor, "create", "project", fmt.Sprintf("p_id=%d", project.PID), nil, project)
	return project, nil
}

func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	project, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, apperrors.New(apperrors.KindNotFound, "project not found")
		}
		return models.Project{}, apperrors.Wrap(apperrors.KindRemote, "load project", err)
	}
	return project, nil
}

// ListProjects scopes the listing by role: entrepreneurs see their own
// projects, everyone else sees the whole board.
func (s *ProjectService) ListProjects(actor types.Actor) ([]models.Project, error) {
	if actor.IsEntrepreneur() {
		owner, err := s.Repos.Entrepreneur.GetEntrepreneurByUserID(actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.New(apperrors.KindNotFound, "entrepreneur profile not found")
			}
			return nil, apperrors.Wrap(apperrors.KindRemote, "load entrepreneur profile", err)
		}
		return s.Repos.Project.ListProjectsByEntrepreneur(owner.EID)
	}
	return s.Repos.Project.ListProjects()
}

// UpdateProject edits title/description/price. Allowed for the owner or an
// admin, and only while the project has not left the New step.
func (s *ProjectService) UpdateProject(actor types.Actor, id uint, input dto.UpdateProjectDTO) (models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return models.Project{}, err
	}
	if err := s.authorizeOwnerOrAdmin(actor, project); err != nil {
		return models.Project{}, err
	}
	if project.Status != models.StatusNew {
		return models.Project{}, apperrors.New(apperrors.KindValidation, "project can only be edited before proposals are sent")
	}

	old := project
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Price != nil {
		project.Price = *input.Price
	}

	if err := s.Repos.Project.UpdateProject(&project); err != nil {
		return models.Project{}, apperrors.Wrap(apperrors.KindRemote, "save project", err)
	}
	s.Audit.Record(actor, "update", "project", fmt.Sprintf("p_id=%d", project.PID), old, project)
	return project, nil
}

func (s *ProjectService) DeleteProject(actor types.Actor, id uint) error {
	project, err := s.GetProject(id)
	if err != nil {
		return err
	}
	if err := s.authorizeOwnerOrAdmin(actor, project); err != nil {
		return err
	}
	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "delete project", err)
	}
	s.Audit.Record(actor, "delete", "project", fmt.Sprintf("p_id=%d", project.PID), project, nil)
	return nil
}

func (s *ProjectService) authorizeOwnerOrAdmin(actor types.Actor, project models.Project) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsEntrepreneur() {
		owner, err := s.Repos.Entrepreneur.GetEntrepreneurByUserID(actor.UserID)
		if err == nil && owner.EID == project.EntrepreneurID {
			return nil
		}
	}
	return apperrors.New(apperrors.KindUnauthorized, "not the project owner")
}
