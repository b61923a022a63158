package usecase

import (
	"context"
	"time"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleMessageInput defines an announcement to schedule.
type ScheduleMessageInput struct {
	ScheduledAt time.Time
	Message     string
}

// MessageUsecase defines operations on messages scheduled for a location or a group.
type MessageUsecase interface {
	// ListMessages returns the target's messages, earliest first.
	ListMessages(ctx context.Context, target entity.MessageTarget, targetID uuid.UUID) ([]*entity.ScheduledMessage, error)
	ScheduleMessage(ctx context.Context, target entity.MessageTarget, targetID uuid.UUID, input *ScheduleMessageInput) (*entity.ScheduledMessage, error)
}
