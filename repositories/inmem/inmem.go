// Package inmem is a map-backed implementation of the repository interfaces.
// It reproduces the store semantics the services rely on, in particular
// gorm.ErrRecordNotFound on misses, gorm.ErrDuplicatedKey on unique-index
// violations and the compare-and-set status write. Used by scenario tests
// that exercise whole flows without a database.
package inmem

import (
	"sort"
	"sync"

	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"gorm.io/gorm"
)

type Store struct {
	mu sync.RWMutex

	nextID uint

	users            map[uint]models.User
	entrepreneurs    map[uint]models.Entrepreneur
	students         map[uint]models.Student
	projects         map[uint]models.Project
	proposals        map[uint]models.Proposal
	proposedStudents map[uint]models.ProposedStudent
	groups           map[uint]models.MessageGroup
	members          map[uint]models.GroupMember
	messages         map[uint]models.Message
	documents        map[uint]models.Document
	services         map[uint]models.Service
	packs            map[uint]models.Pack
	auditLogs        []models.AuditLog
}

func NewStore() *Store {
	return &Store{
		users:            make(map[uint]models.User),
		entrepreneurs:    make(map[uint]models.Entrepreneur),
		students:         make(map[uint]models.Student),
		projects:         make(map[uint]models.Project),
		proposals:        make(map[uint]models.Proposal),
		proposedStudents: make(map[uint]models.ProposedStudent),
		groups:           make(map[uint]models.MessageGroup),
		members:          make(map[uint]models.GroupMember),
		messages:         make(map[uint]models.Message),
		documents:        make(map[uint]models.Document),
		services:         make(map[uint]models.Service),
		packs:            make(map[uint]models.Pack),
	}
}

// NewRepos wires a fresh Store behind every repository interface.
func NewRepos() (*repositories.Repos, *Store) {
	s := NewStore()
	return &repositories.Repos{
		User:            (*userRepo)(s),
		Entrepreneur:    (*entrepreneurRepo)(s),
		Student:         (*studentRepo)(s),
		Project:         (*projectRepo)(s),
		Proposal:        (*proposalRepo)(s),
		ProposedStudent: (*proposedStudentRepo)(s),
		Message:         (*messageRepo)(s),
		Document:        (*documentRepo)(s),
		Catalog:         (*catalogRepo)(s),
		Audit:           (*auditRepo)(s),
	}, s
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// ---- users ----

type userRepo Store

func (r *userRepo) GetUserByID(id uint) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *userRepo) GetUserByUsername(username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (r *userRepo) SaveUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.UID == 0 {
		for _, u := range r.users {
			if u.Username == user.Username {
				return gorm.ErrDuplicatedKey
			}
		}
		user.UID = (*Store)(r).id()
	}
	r.users[user.UID] = *user
	return nil
}

func (r *userRepo) ListUsers() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

func (r *userRepo) DeleteUser(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

// ---- entrepreneurs ----

type entrepreneurRepo Store

func (r *entrepreneurRepo) CreateEntrepreneur(e *models.Entrepreneur) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.entrepreneurs {
		if x.UserID == e.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	e.EID = (*Store)(r).id()
	r.entrepreneurs[e.EID] = *e
	return nil
}

func (r *entrepreneurRepo) GetEntrepreneurByID(id uint) (models.Entrepreneur, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entrepreneurs[id]
	if !ok {
		return models.Entrepreneur{}, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *entrepreneurRepo) GetEntrepreneurByUserID(userID uint) (models.Entrepreneur, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entrepreneurs {
		if e.UserID == userID {
			return e, nil
		}
	}
	return models.Entrepreneur{}, gorm.ErrRecordNotFound
}

// ---- students ----

type studentRepo Store

func (r *studentRepo) CreateStudent(st *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.students {
		if x.UserID == st.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	st.SID = (*Store)(r).id()
	r.students[st.SID] = *st
	return nil
}

func (r *studentRepo) GetStudentByID(id uint) (models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.students[id]
	if !ok {
		return models.Student{}, gorm.ErrRecordNotFound
	}
	return st, nil
}

func (r *studentRepo) GetStudentByUserID(userID uint) (models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, st := range r.students {
		if st.UserID == userID {
			return st, nil
		}
	}
	return models.Student{}, gorm.ErrRecordNotFound
}

func (r *studentRepo) ListStudents() ([]models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Student, 0, len(r.students))
	for _, st := range r.students {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SID < out[j].SID })
	return out, nil
}

func (r *studentRepo) ListAvailableStudents() ([]models.Student, error) {
	all, _ := r.ListStudents()
	out := all[:0]
	for _, st := range all {
		if st.Available {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *studentRepo) SetAvailability(ids []uint, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		st, ok := r.students[id]
		if !ok {
			continue
		}
		st.Available = available
		r.students[id] = st
	}
	return nil
}

// ---- projects ----

type projectRepo Store

func (r *projectRepo) CreateProject(p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.PID = (*Store)(r).id()
	if p.Status == "" {
		p.Status = models.StatusNew
	}
	r.projects[p.PID] = *p
	return nil
}

func (r *projectRepo) GetProjectByID(id uint) (models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[id]
	if !ok {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *projectRepo) ListProjects() ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}

func (r *projectRepo) ListProjectsByEntrepreneur(entrepreneurID uint) ([]models.Project, error) {
	all, _ := r.ListProjects()
	out := all[:0]
	for _, p := range all {
		if p.EntrepreneurID == entrepreneurID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *projectRepo) UpdateProject(p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[p.PID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.projects[p.PID] = *p
	return nil
}

func (r *projectRepo) UpdateStatus(id uint, from, to models.ProjectStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	r.projects[id] = p
	return true, nil
}

func (r *projectRepo) SetSelectedStudent(id, studentID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sid := studentID
	p.SelectedStudentID = &sid
	r.projects[id] = p
	return nil
}

func (r *projectRepo) DeleteProject(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pid, p := range r.proposals {
		if p.ProjectID == id {
			delete(r.proposals, pid)
		}
	}
	for psid, ps := range r.proposedStudents {
		if ps.ProjectID == id {
			delete(r.proposedStudents, psid)
		}
	}
	delete(r.projects, id)
	return nil
}

// ---- proposals ----

type proposalRepo Store

func (r *proposalRepo) CreateProposal(p *models.Proposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.proposals {
		if x.ProjectID == p.ProjectID && x.StudentID == p.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	p.ID = (*Store)(r).id()
	r.proposals[p.ID] = *p
	return nil
}

func (r *proposalRepo) GetProposalByID(id uint) (models.Proposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.proposals[id]
	if !ok {
		return models.Proposal{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *proposalRepo) list(filter func(models.Proposal) bool) []models.Proposal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Proposal
	for _, p := range r.proposals {
		if filter(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *proposalRepo) ListProposalsByProject(projectID uint) ([]models.Proposal, error) {
	return r.list(func(p models.Proposal) bool { return p.ProjectID == projectID }), nil
}

func (r *proposalRepo) ListProposalsByStudent(studentID uint) ([]models.Proposal, error) {
	return r.list(func(p models.Proposal) bool { return p.StudentID == studentID }), nil
}

func (r *proposalRepo) ListAcceptedByProject(projectID uint) ([]models.Proposal, error) {
	return r.list(func(p models.Proposal) bool {
		return p.ProjectID == projectID && p.Accepted != nil && *p.Accepted
	}), nil
}

func (r *proposalRepo) CountProposalsByProject(projectID uint) (int64, error) {
	return int64(len(r.list(func(p models.Proposal) bool { return p.ProjectID == projectID }))), nil
}

func (r *proposalRepo) SetAcceptance(id uint, accepted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.proposals[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Accepted = &accepted
	r.proposals[id] = p
	return nil
}

// ---- proposed students ----

type proposedStudentRepo Store

func (r *proposedStudentRepo) CreateProposedStudent(ps *models.ProposedStudent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.proposedStudents {
		if x.ProjectID == ps.ProjectID && x.StudentID == ps.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	ps.ID = (*Store)(r).id()
	r.proposedStudents[ps.ID] = *ps
	return nil
}

func (r *proposedStudentRepo) ListProposedByProject(projectID uint) ([]models.ProposedStudent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.ProposedStudent
	for _, ps := range r.proposedStudents {
		if ps.ProjectID == projectID {
			out = append(out, ps)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *proposedStudentRepo) ProposedExists(projectID, studentID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ps := range r.proposedStudents {
		if ps.ProjectID == projectID && ps.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

// ---- messages ----

type messageRepo Store

func (r *messageRepo) GetOrCreateGroupByProject(projectID uint) (models.MessageGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.groups {
		if g.ProjectID == projectID {
			return g, nil
		}
	}
	g := models.MessageGroup{GID: (*Store)(r).id(), ProjectID: projectID}
	r.groups[g.GID] = g
	return g, nil
}

func (r *messageRepo) AddMember(groupID, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.GroupID == groupID && m.UserID == userID {
			return nil
		}
	}
	m := models.GroupMember{ID: (*Store)(r).id(), GroupID: groupID, UserID: userID}
	r.members[m.ID] = m
	return nil
}

func (r *messageRepo) ListMembers(groupID uint) ([]models.GroupMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.GroupMember
	for _, m := range r.members {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *messageRepo) CreateMessage(msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.MID = (*Store)(r).id()
	r.messages[msg.MID] = *msg
	return nil
}

func (r *messageRepo) ListMessagesByGroup(groupID uint) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Message
	for _, m := range r.messages {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MID < out[j].MID })
	return out, nil
}

func (r *messageRepo) ListNotificationsForUser(userID uint) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Message
	for _, m := range r.messages {
		if m.RecipientID != nil && *m.RecipientID == userID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MID < out[j].MID })
	return out, nil
}

func (r *messageRepo) MarkRead(messageID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[messageID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Read = true
	r.messages[messageID] = m
	return nil
}

// ---- documents ----

type documentRepo Store

func (r *documentRepo) CreateDocument(d *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.DID = (*Store)(r).id()
	r.documents[d.DID] = *d
	return nil
}

func (r *documentRepo) GetDocumentByID(id uint) (models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.documents[id]
	if !ok {
		return models.Document{}, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *documentRepo) ListDocumentsByProject(projectID uint) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Document
	for _, d := range r.documents {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DID < out[j].DID })
	return out, nil
}

func (r *documentRepo) DeleteDocument(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.documents, id)
	return nil
}

// ---- catalog ----

type catalogRepo Store

func (r *catalogRepo) SaveService(s *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == 0 {
		for _, x := range r.services {
			if x.Name == s.Name {
				return gorm.ErrDuplicatedKey
			}
		}
		s.ID = (*Store)(r).id()
	}
	r.services[s.ID] = *s
	return nil
}

func (r *catalogRepo) ListServices() ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *catalogRepo) DeleteService(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.services, id)
	return nil
}

func (r *catalogRepo) SavePack(p *models.Pack) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		for _, x := range r.packs {
			if x.Name == p.Name {
				return gorm.ErrDuplicatedKey
			}
		}
		p.ID = (*Store)(r).id()
	}
	r.packs[p.ID] = *p
	return nil
}

func (r *catalogRepo) ListPacks() ([]models.Pack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Pack, 0, len(r.packs))
	for _, p := range r.packs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *catalogRepo) DeletePack(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.packs, id)
	return nil
}

// ---- audit ----

type auditRepo Store

func (r *auditRepo) CreateAuditLog(audit *models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	audit.ID = (*Store)(r).id()
	r.auditLogs = append(r.auditLogs, *audit)
	return nil
}

func (r *auditRepo) GetAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.AuditLog
	for _, a := range r.auditLogs {
		if params.UserID != nil && a.UserID != *params.UserID {
			continue
		}
		if params.ResourceType != nil && a.ResourceType != *params.ResourceType {
			continue
		}
		if params.Action != nil && a.Action != *params.Action {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
