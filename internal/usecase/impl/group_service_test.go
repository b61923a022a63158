package impl

import (
	"context"
	"log/slog"
	"testing"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	mockRepo "campus/internal/mocks/repository"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type groupServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	groupRepo    *mockRepo.MockGroupRepository
	studentRepo  *mockRepo.MockStudentRepository
	txLocation   *mockRepo.MockLocationRepository
	txGroupRepo  *mockRepo.MockGroupRepository
	txStudentRep *mockRepo.MockStudentRepository
}

func newGroupServiceForTest(t *testing.T) (usecase.GroupUsecase, *groupServiceMocks) {
	t.Helper()

	m := &groupServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		groupRepo:    mockRepo.NewMockGroupRepository(t),
		studentRepo:  mockRepo.NewMockStudentRepository(t),
		txLocation:   mockRepo.NewMockLocationRepository(t),
		txGroupRepo:  mockRepo.NewMockGroupRepository(t),
		txStudentRep: mockRepo.NewMockStudentRepository(t),
	}

	service := NewGroupService(GroupServiceParams{
		TxManager:   m.txManager,
		GroupRepo:   m.groupRepo,
		StudentRepo: m.studentRepo,
		Logger:      slog.Default(),
	})

	return service, m
}

func TestGroupService_ListGroups(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	expected := []*entity.Group{{ID: uuid.New(), Name: "Algebra"}}
	m.groupRepo.EXPECT().FindAll(mock.Anything).Return(expected, nil)

	groups, err := service.ListGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, groups)
}

func TestGroupService_GetGroup_NotFound(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	m.groupRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrGroupNotFound)

	_, err := service.GetGroup(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestGroupService_CreateGroup_Success(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	locationID := uuid.New()
	runInTx(m.txManager, m.factory)
	m.factory.EXPECT().LocationRepo().Return(m.txLocation)
	m.factory.EXPECT().GroupRepo().Return(m.txGroupRepo)
	m.txLocation.EXPECT().FindByID(mock.Anything, locationID).Return(&entity.Location{ID: locationID, Name: "Library"}, nil)
	m.txGroupRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(g *entity.Group) bool {
			return g.LocationID == locationID && g.Name == "Algebra"
		})).
		Return(nil)

	group, err := service.CreateGroup(context.Background(), &usecase.CreateGroupInput{LocationID: locationID, Name: "Algebra"})
	require.NoError(t, err)
	assert.Equal(t, locationID, group.LocationID)
	assert.NotEqual(t, uuid.Nil, group.ID)
}

func TestGroupService_CreateGroup_UnknownLocation(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	runInTx(m.txManager, m.factory)
	m.factory.EXPECT().LocationRepo().Return(m.txLocation)
	m.txLocation.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrLocationNotFound)

	_, err := service.CreateGroup(context.Background(), &usecase.CreateGroupInput{LocationID: uuid.New(), Name: "Algebra"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownLocation)
}

func TestGroupService_CreateGroup_DuplicateName(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	runInTx(m.txManager, m.factory)
	m.factory.EXPECT().LocationRepo().Return(m.txLocation)
	m.factory.EXPECT().GroupRepo().Return(m.txGroupRepo)
	m.txLocation.EXPECT().FindByID(mock.Anything, mock.Anything).Return(&entity.Location{}, nil)
	m.txGroupRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrGroupNameExists.WrapMessage("group name taken"))

	_, err := service.CreateGroup(context.Background(), &usecase.CreateGroupInput{LocationID: uuid.New(), Name: "Algebra"})
	assert.ErrorIs(t, err, domainerrors.ErrGroupNameExists)
}

func TestGroupService_ListStudents(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	groupID := uuid.New()
	expected := []*entity.Student{{ID: uuid.New(), GroupID: groupID, Name: "Ana"}}
	m.groupRepo.EXPECT().FindByID(mock.Anything, groupID).Return(&entity.Group{ID: groupID}, nil)
	m.studentRepo.EXPECT().FindByGroup(mock.Anything, groupID).Return(expected, nil)

	students, err := service.ListStudents(context.Background(), groupID)
	require.NoError(t, err)
	assert.Equal(t, expected, students)
}

func TestGroupService_ListStudents_UnknownGroup(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	m.groupRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrGroupNotFound)

	_, err := service.ListStudents(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrGroupNotFound)
}

func TestGroupService_EnrollStudent(t *testing.T) {
	service, m := newGroupServiceForTest(t)

	groupID := uuid.New()
	runInTx(m.txManager, m.factory)
	m.factory.EXPECT().GroupRepo().Return(m.txGroupRepo)
	m.factory.EXPECT().StudentRepo().Return(m.txStudentRep)
	m.txGroupRepo.EXPECT().FindByID(mock.Anything, groupID).Return(&entity.Group{ID: groupID}, nil)
	m.txStudentRep.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(s *entity.Student) bool {
			return s.GroupID == groupID && s.Name == "Ana" && s.PhoneNumber == "+386 40 111 222"
		})).
		Return(nil)

	student, err := service.EnrollStudent(context.Background(), groupID, &usecase.EnrollStudentInput{
		Name:        "Ana",
		PhoneNumber: " +386 40 111 222 ",
	})
	require.NoError(t, err)
	assert.Equal(t, groupID, student.GroupID)
}

func TestGroupService_EnrollStudent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *groupServiceMocks)
		wantErr error
	}{
		{
			name: "unknown group",
			setup: func(m *groupServiceMocks) {
				m.factory.EXPECT().GroupRepo().Return(m.txGroupRepo)
				m.txGroupRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrGroupNotFound)
			},
			wantErr: domainerrors.ErrUnknownGroup,
		},
		{
			name: "phone number in use",
			setup: func(m *groupServiceMocks) {
				m.factory.EXPECT().GroupRepo().Return(m.txGroupRepo)
				m.factory.EXPECT().StudentRepo().Return(m.txStudentRep)
				m.txGroupRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(&entity.Group{}, nil)
				m.txStudentRep.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrPhoneNumberInUse.WrapMessage("phone number taken"))
			},
			wantErr: domainerrors.ErrPhoneNumberInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newGroupServiceForTest(t)
			runInTx(m.txManager, m.factory)
			tt.setup(m)

			_, err := service.EnrollStudent(context.Background(), uuid.New(), &usecase.EnrollStudentInput{Name: "Ana", PhoneNumber: "12345"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
