package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

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

type messageServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	locationRepo *mockRepo.MockLocationRepository
	groupRepo    *mockRepo.MockGroupRepository
	messageRepo  *mockRepo.MockMessageRepository
}

func newMessageServiceForTest(t *testing.T) (usecase.MessageUsecase, *messageServiceMocks) {
	t.Helper()

	m := &messageServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		groupRepo:    mockRepo.NewMockGroupRepository(t),
		messageRepo:  mockRepo.NewMockMessageRepository(t),
	}

	service := NewMessageService(MessageServiceParams{
		TxManager:    m.txManager,
		LocationRepo: m.locationRepo,
		GroupRepo:    m.groupRepo,
		MessageRepo:  m.messageRepo,
		Logger:       slog.Default(),
	})

	return service, m
}

func TestMessageService_ListMessages(t *testing.T) {
	service, m := newMessageServiceForTest(t)

	groupID := uuid.New()
	expected := []*entity.ScheduledMessage{{ID: uuid.New(), Target: entity.MessageTargetGroup, TargetID: groupID}}
	m.groupRepo.EXPECT().FindByID(mock.Anything, groupID).Return(&entity.Group{ID: groupID}, nil)
	m.messageRepo.EXPECT().FindByTarget(mock.Anything, entity.MessageTargetGroup, groupID).Return(expected, nil)

	messages, err := service.ListMessages(context.Background(), entity.MessageTargetGroup, groupID)
	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}

func TestMessageService_ListMessages_UnknownTarget(t *testing.T) {
	service, m := newMessageServiceForTest(t)

	m.locationRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrLocationNotFound)

	_, err := service.ListMessages(context.Background(), entity.MessageTargetLocation, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestMessageService_ScheduleMessage_Location(t *testing.T) {
	service, m := newMessageServiceForTest(t)

	locationID := uuid.New()
	scheduledAt := time.Date(2024, 5, 6, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	txLocationRepo := mockRepo.NewMockLocationRepository(t)
	txMessageRepo := mockRepo.NewMockMessageRepository(t)

	runInTx(m.txManager, m.factory)
	m.factory.EXPECT().LocationRepo().Return(txLocationRepo)
	m.factory.EXPECT().MessageRepo().Return(txMessageRepo)
	txLocationRepo.EXPECT().FindByID(mock.Anything, locationID).Return(&entity.Location{ID: locationID}, nil)
	txMessageRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(msg *entity.ScheduledMessage) bool {
			return msg.Target == entity.MessageTargetLocation && msg.TargetID == locationID && msg.Message == "Room changed"
		})).
		Return(nil)

	message, err := service.ScheduleMessage(context.Background(), entity.MessageTargetLocation, locationID, &usecase.ScheduleMessageInput{
		ScheduledAt: scheduledAt,
		Message:     "Room changed",
	})
	require.NoError(t, err)
	assert.True(t, scheduledAt.Equal(message.ScheduledAt))
	assert.Equal(t, time.UTC, message.ScheduledAt.Location())
}

func TestMessageService_ScheduleMessage_UnknownGroup(t *testing.T) {
	service, m := newMessageServiceForTest(t)

	txGroupRepo := mockRepo.NewMockGroupRepository(t)
	runInTx(m.txManager, m.factory)
	m.factory.EXPECT().GroupRepo().Return(txGroupRepo)
	txGroupRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, repository.ErrGroupNotFound)

	_, err := service.ScheduleMessage(context.Background(), entity.MessageTargetGroup, uuid.New(), &usecase.ScheduleMessageInput{
		ScheduledAt: time.Now(),
		Message:     "hello",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownGroup)
}
