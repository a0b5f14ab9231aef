package services

import (
	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/repositories"
)

// AvailabilityEvent is the closed set of lifecycle moments that may touch the
// denormalized Student.Available flag. Nothing else writes it.
type AvailabilityEvent interface {
	availabilityEvent()
}

// Shortlisted: candidates forwarded to the entrepreneur are taken off the
// market while they wait for the decision.
type Shortlisted struct {
	StudentIDs []uint
}

// Selected: the winner stays unavailable, every other shortlisted student is
// released.
type Selected struct {
	WinnerID uint
	LoserIDs []uint
}

// Completed: the selected student is released when the project closes.
type Completed struct {
	StudentID uint
}

func (Shortlisted) availabilityEvent() {}
func (Selected) availabilityEvent()    {}
func (Completed) availabilityEvent()   {}

type AvailabilityService struct {
	Repos *repositories.Repos
}

func NewAvailabilityService(repos *repositories.Repos) *AvailabilityService {
	return &AvailabilityService{Repos: repos}
}

// Resolve applies one event. Each flag write is an independent store call;
// Resolve stops at the first failure without undoing earlier writes.
func (s *AvailabilityService) Resolve(event AvailabilityEvent) error {
	switch e := event.(type) {
	case Shortlisted:
		if err := s.Repos.Student.SetAvailability(e.StudentIDs, false); err != nil {
			return apperrors.Wrap(apperrors.KindRemote, "mark shortlisted students unavailable", err)
		}
	case Selected:
		if err := s.Repos.Student.SetAvailability([]uint{e.WinnerID}, false); err != nil {
			return apperrors.Wrap(apperrors.KindRemote, "mark selected student unavailable", err)
		}
		if err := s.Repos.Student.SetAvailability(e.LoserIDs, true); err != nil {
			return apperrors.Wrap(apperrors.KindRemote, "release non-selected students", err)
		}
	case Completed:
		if err := s.Repos.Student.SetAvailability([]uint{e.StudentID}, true); err != nil {
			return apperrors.Wrap(apperrors.KindRemote, "release completed student", err)
		}
	default:
		return apperrors.Newf(apperrors.KindValidation, "unknown availability event %T", event)
	}
	return nil
}
