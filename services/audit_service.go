package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/types"
)

type AuditService struct {
	Repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

func (s *AuditService) QueryAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

// Record stores an audit row. Failures are logged and swallowed: the audited
// action has already happened and must not be failed retroactively.
func (s *AuditService) Record(actor types.Actor, action, resourceType, resourceID string, before, after any) {
	var oldData, newData []byte
	var err error

	if before != nil {
		if oldData, err = json.Marshal(before); err != nil {
			log.Printf("audit: marshal old data: %v", err)
		}
	}
	if after != nil {
		if newData, err = json.Marshal(after); err != nil {
			log.Printf("audit: marshal new data: %v", err)
		}
	}

	audit := &models.AuditLog{
		UserID:       actor.UserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		Description:  fmt.Sprintf("role=%s", actor.Role),
	}
	if err := s.Repos.Audit.CreateAuditLog(audit); err != nil {
		log.Printf("audit: store log: %v", err)
	}
}
