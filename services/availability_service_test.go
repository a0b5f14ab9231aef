package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/repositories/mock_repositories"
)

func setupAvailabilityMocks(t *testing.T) (*AvailabilityService, *mock_repositories.MockStudentRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockStudent := mock_repositories.NewMockStudentRepo(ctrl)
	repos := &repositories.Repos{Student: mockStudent}
	return NewAvailabilityService(repos), mockStudent
}

func TestResolveShortlisted(t *testing.T) {
	svc, mockStudent := setupAvailabilityMocks(t)

	mockStudent.EXPECT().SetAvailability([]uint{1, 2, 3}, false).Return(nil)

	err := svc.Resolve(Shortlisted{StudentIDs: []uint{1, 2, 3}})
	assert.NoError(t, err)
}

func TestResolveSelected(t *testing.T) {
	svc, mockStudent := setupAvailabilityMocks(t)

	gomock.InOrder(
		mockStudent.EXPECT().SetAvailability([]uint{7}, false).Return(nil),
		mockStudent.EXPECT().SetAvailability([]uint{8, 9}, true).Return(nil),
	)

	err := svc.Resolve(Selected{WinnerID: 7, LoserIDs: []uint{8, 9}})
	assert.NoError(t, err)
}

func TestResolveSelectedNoLosers(t *testing.T) {
	svc, mockStudent := setupAvailabilityMocks(t)

	mockStudent.EXPECT().SetAvailability([]uint{7}, false).Return(nil)
	mockStudent.EXPECT().SetAvailability([]uint{}, true).Return(nil)

	err := svc.Resolve(Selected{WinnerID: 7, LoserIDs: []uint{}})
	assert.NoError(t, err)
}

func TestResolveCompleted(t *testing.T) {
	svc, mockStudent := setupAvailabilityMocks(t)

	mockStudent.EXPECT().SetAvailability([]uint{5}, true).Return(nil)

	err := svc.Resolve(Completed{StudentID: 5})
	assert.NoError(t, err)
}

// A failed winner write must stop the event before the losers are touched.
func TestResolveSelectedStopsOnFirstFailure(t *testing.T) {
	svc, mockStudent := setupAvailabilityMocks(t)

	mockStudent.EXPECT().SetAvailability([]uint{7}, false).Return(errors.New("db down"))

	err := svc.Resolve(Selected{WinnerID: 7, LoserIDs: []uint{8}})
	assert.Error(t, err)
	assert.Equal(t, apperrors.KindRemote, apperrors.KindOf(err))
}
