package services

import (
	"github.com/venturemate/marketplace-go/repositories"
)

type Services struct {
	User         *UserService
	Project      *ProjectService
	Proposal     *ProposalService
	Availability *AvailabilityService
	Messaging    *MessagingService
	Lifecycle    *LifecycleService
	Document     *DocumentService
	Catalog      *CatalogService
	Audit        *AuditService
}

func New(repos *repositories.Repos, hub Broadcaster, store ObjectStore) *Services {
	availability := NewAvailabilityService(repos)
	messaging := NewMessagingService(repos, hub)
	audit := NewAuditService(repos)
	return &Services{
		User:         NewUserService(repos),
		Project:      NewProjectService(repos, audit),
		Proposal:     NewProposalService(repos),
		Availability: availability,
		Messaging:    messaging,
		Lifecycle:    NewLifecycleService(repos, availability, messaging, audit),
		Document:     NewDocumentService(repos, store),
		Catalog:      NewCatalogService(repos),
		Audit:        audit,
	}
}
