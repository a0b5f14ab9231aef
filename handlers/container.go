package handlers

import (
	"github.com/venturemate/marketplace-go/chat"
	"github.com/venturemate/marketplace-go/services"
)

type Handlers struct {
	User      *UserHandler
	Project   *ProjectHandler
	Proposal  *ProposalHandler
	Lifecycle *LifecycleHandler
	Message   *MessageHandler
	Document  *DocumentHandler
	Catalog   *CatalogHandler
	Audit     *AuditHandler
	WS        *WSHandler
}

func New(svc *services.Services, hub *chat.Hub) *Handlers {
	return &Handlers{
		User:      NewUserHandler(svc.User),
		Project:   NewProjectHandler(svc.Project),
		Proposal:  NewProposalHandler(svc.Proposal),
		Lifecycle: NewLifecycleHandler(svc.Lifecycle),
		Message:   NewMessageHandler(svc.Messaging),
		Document:  NewDocumentHandler(svc.Document),
		Catalog:   NewCatalogHandler(svc.Catalog),
		Audit:     NewAuditHandler(svc.Audit),
		WS:        NewWSHandler(hub, svc.Messaging),
	}
}
