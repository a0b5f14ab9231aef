package types

import "github.com/venturemate/marketplace-go/models"

// Actor identifies who is invoking a lifecycle operation. Services take it
// explicitly instead of reading session state so tests stay deterministic.
type Actor struct {
	UserID uint
	Role   models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) IsEntrepreneur() bool {
	return a.Role == models.RoleEntrepreneur
}

func (a Actor) IsStudent() bool {
	return a.Role == models.RoleStudent
}
