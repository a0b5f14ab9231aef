package services

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/types"
	"gorm.io/gorm"
)

// ObjectStore is the blob backend for document bytes; the minio package
// provides the production implementation.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	Get(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

type DocumentService struct {
	Repos *repositories.Repos
	Store ObjectStore
}

func NewDocumentService(repos *repositories.Repos, store ObjectStore) *DocumentService {
	return &DocumentService{Repos: repos, Store: store}
}

// Upload stores the bytes first, then the metadata row. A failed metadata
// write leaves an orphan object behind rather than losing an uploaded file.
func (s *DocumentService) Upload(ctx context.Context, actor types.Actor, projectID uint, name, contentType string, r io.Reader, size int64) (models.Document, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, apperrors.New(apperrors.KindNotFound, "project not found")
		}
		return models.Document{}, apperrors.Wrap(apperrors.KindRemote, "load project", err)
	}

	key := uuid.New().String() + path.Ext(name)
	if err := s.Store.Put(ctx, key, contentType, r, size); err != nil {
		return models.Document{}, apperrors.Wrap(apperrors.KindRemote, "store object", err)
	}

	doc := models.Document{
		ProjectID:   projectID,
		Name:        name,
		ObjectKey:   key,
		ContentType: contentType,
		Size:        size,
		UploadedBy:  actor.UserID,
	}
	if err := s.Repos.Document.CreateDocument(&doc); err != nil {
		return models.Document{}, apperrors.Wrap(apperrors.KindRemote, "store document metadata", err)
	}
	return doc, nil
}

func (s *DocumentService) Download(ctx context.Context, id uint) (models.Document, []byte, error) {
	doc, err := s.Repos.Document.GetDocumentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Document{}, nil, apperrors.New(apperrors.KindNotFound, "document not found")
		}
		return models.Document{}, nil, apperrors.Wrap(apperrors.KindRemote, "load document", err)
	}
	data, err := s.Store.Get(ctx, doc.ObjectKey)
	if err != nil {
		return models.Document{}, nil, apperrors.Wrap(apperrors.KindRemote, "fetch object", err)
	}
	return doc, data, nil
}

func (s *DocumentService) ListByProject(projectID uint) ([]models.Document, error) {
	return s.Repos.Document.ListDocumentsByProject(projectID)
}

func (s *DocumentService) Delete(ctx context.Context, actor types.Actor, id uint) error {
	doc, err := s.Repos.Document.GetDocumentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindNotFound, "document not found")
		}
		return apperrors.Wrap(apperrors.KindRemote, "load document", err)
	}
	if !actor.IsAdmin() && doc.UploadedBy != actor.UserID {
		return apperrors.New(apperrors.KindUnauthorized, "not the document owner")
	}
	if err := s.Store.Remove(ctx, doc.ObjectKey); err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "remove object", err)
	}
	if err := s.Repos.Document.DeleteDocument(id); err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "delete document metadata", err)
	}
	return nil
}
