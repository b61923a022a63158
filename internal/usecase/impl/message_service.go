package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	groupRepo    repository.GroupRepository
	messageRepo  repository.MessageRepository
	now          func() time.Time
	logger       *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	GroupRepo    repository.GroupRepository
	MessageRepo  repository.MessageRepository
	Logger       *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		groupRepo:    params.GroupRepo,
		messageRepo:  params.MessageRepo,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMessages returns the messages of an existing location or group, earliest first.
func (srv *messageService) ListMessages(ctx context.Context, target entity.MessageTarget, targetID uuid.UUID) ([]*entity.ScheduledMessage, error) {
	if err := srv.ensureTargetExists(ctx, target, targetID); err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.FindByTarget(ctx, target, targetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// ScheduleMessage stores an announcement for an existing location or group.
func (srv *messageService) ScheduleMessage(ctx context.Context, target entity.MessageTarget, targetID uuid.UUID, input *usecase.ScheduleMessageInput) (*entity.ScheduledMessage, error) {
	message := &entity.ScheduledMessage{
		ID:          uuid.New(),
		Target:      target,
		TargetID:    targetID,
		ScheduledAt: input.ScheduledAt.UTC(),
		Message:     strings.TrimSpace(input.Message),
		CreatedAt:   srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		switch target {
		case entity.MessageTargetLocation:
			_, err := repoFactory.LocationRepo().FindByID(ctx, targetID)
			if errors.Is(err, repository.ErrLocationNotFound) {
				return domainerrors.ErrUnknownLocation
			}
			if err != nil {
				return errors.Wrap(err, "failed to find location")
			}
		case entity.MessageTargetGroup:
			_, err := repoFactory.GroupRepo().FindByID(ctx, targetID)
			if errors.Is(err, repository.ErrGroupNotFound) {
				return domainerrors.ErrUnknownGroup
			}
			if err != nil {
				return errors.Wrap(err, "failed to find group")
			}
		default:
			return errors.Errorf("unknown message target %q", target)
		}

		return repoFactory.MessageRepo().Create(ctx, message)
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Message scheduled",
		slog.String("messageID", message.ID.String()),
		slog.String("target", string(target)),
		slog.String("targetID", targetID.String()),
		slog.Time("scheduledAt", message.ScheduledAt),
	)

	return message, nil
}

func (srv *messageService) ensureTargetExists(ctx context.Context, target entity.MessageTarget, targetID uuid.UUID) error {
	switch target {
	case entity.MessageTargetLocation:
		_, err := srv.locationRepo.FindByID(ctx, targetID)
		if errors.Is(err, repository.ErrLocationNotFound) {
			return domainerrors.ErrLocationNotFound
		}

		return errors.Wrap(err, "failed to find location")
	case entity.MessageTargetGroup:
		_, err := srv.groupRepo.FindByID(ctx, targetID)
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.ErrGroupNotFound
		}

		return errors.Wrap(err, "failed to find group")
	default:
		return errors.Errorf("unknown message target %q", target)
	}
}
