package postgres

import (
	"context"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the domain.MessageRepository interface.
// Location and group messages live in separate tables, selected by the message target.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// FindByTarget returns the messages for one location or group, earliest scheduled first.
func (repo *messageRepository) FindByTarget(ctx context.Context, target entity.MessageTarget, targetID uuid.UUID) ([]*entity.ScheduledMessage, error) {
	query := repo.db.WithContext(ctx).Order("scheduled_at ASC").Order("id ASC")

	switch target {
	case entity.MessageTargetLocation:
		var messageMs []*model.LocationMessageModel
		if err := query.Where("location_id = ?", targetID).Find(&messageMs).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list location messages")
		}

		messages := make([]*entity.ScheduledMessage, 0, len(messageMs))
		for _, messageM := range messageMs {
			messages = append(messages, toLocationMessageDomain(messageM))
		}

		return messages, nil
	case entity.MessageTargetGroup:
		var messageMs []*model.GroupMessageModel
		if err := query.Where("group_id = ?", targetID).Find(&messageMs).Error; err != nil {
			return nil, errors.Wrap(err, "failed to list group messages")
		}

		messages := make([]*entity.ScheduledMessage, 0, len(messageMs))
		for _, messageM := range messageMs {
			messages = append(messages, toGroupMessageDomain(messageM))
		}

		return messages, nil
	default:
		return nil, errors.Errorf("unknown message target %q", target)
	}
}

// Create persists a new scheduled message in the table for its target.
func (repo *messageRepository) Create(ctx context.Context, message *entity.ScheduledMessage) error {
	switch message.Target {
	case entity.MessageTargetLocation:
		messageM := fromLocationMessageDomain(message)
		if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
			if isForeignKeyConstraintViolation(err, constraintLocationMessagesLocationIDFkey) {
				return domainerrors.ErrUnknownLocation.WrapMessage("message references missing location")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create location message")
		}
		message.CreatedAt = messageM.CreatedAt

		return nil
	case entity.MessageTargetGroup:
		messageM := fromGroupMessageDomain(message)
		if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
			if isForeignKeyConstraintViolation(err, constraintGroupMessagesGroupIDFkey) {
				return domainerrors.ErrUnknownGroup.WrapMessage("message references missing group")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create group message")
		}
		message.CreatedAt = messageM.CreatedAt

		return nil
	default:
		return errors.Errorf("unknown message target %q", message.Target)
	}
}

func toLocationMessageDomain(data *model.LocationMessageModel) *entity.ScheduledMessage {
	return &entity.ScheduledMessage{
		ID:          data.ID,
		Target:      entity.MessageTargetLocation,
		TargetID:    data.LocationID,
		ScheduledAt: data.ScheduledAt,
		Message:     data.Message,
		CreatedAt:   data.CreatedAt,
	}
}

func fromLocationMessageDomain(data *entity.ScheduledMessage) *model.LocationMessageModel {
	return &model.LocationMessageModel{
		ID:          data.ID,
		LocationID:  data.TargetID,
		ScheduledAt: data.ScheduledAt,
		Message:     data.Message,
		CreatedAt:   data.CreatedAt,
	}
}

func toGroupMessageDomain(data *model.GroupMessageModel) *entity.ScheduledMessage {
	return &entity.ScheduledMessage{
		ID:          data.ID,
		Target:      entity.MessageTargetGroup,
		TargetID:    data.GroupID,
		ScheduledAt: data.ScheduledAt,
		Message:     data.Message,
		CreatedAt:   data.CreatedAt,
	}
}

func fromGroupMessageDomain(data *entity.ScheduledMessage) *model.GroupMessageModel {
	return &model.GroupMessageModel{
		ID:          data.ID,
		GroupID:     data.TargetID,
		ScheduledAt: data.ScheduledAt,
		Message:     data.Message,
		CreatedAt:   data.CreatedAt,
	}
}
