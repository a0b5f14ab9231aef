package repositories

type Repos struct {
	User            UserRepo
	Entrepreneur    EntrepreneurRepo
	Student         StudentRepo
	Project         ProjectRepo
	Proposal        ProposalRepo
	ProposedStudent ProposedStudentRepo
	Message         MessageRepo
	Document        DocumentRepo
	Catalog         CatalogRepo
	Audit           AuditRepo
}

func New() *Repos {
	return &Repos{
		User:            &DBUserRepo{},
		Entrepreneur:    &DBEntrepreneurRepo{},
		Student:         &DBStudentRepo{},
		Project:         &DBProjectRepo{},
		Proposal:        &DBProposalRepo{},
		ProposedStudent: &DBProposedStudentRepo{},
		Message:         &DBMessageRepo{},
		Document:        &DBDocumentRepo{},
		Catalog:         &DBCatalogRepo{},
		Audit:           &DBAuditRepo{},
	}
}
