package repository

import (
	"context"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository stores announcements scheduled for locations and groups.
type MessageRepository interface {
	// FindByTarget returns the messages addressed to one location or group, earliest first.
	FindByTarget(ctx context.Context, target entity.MessageTarget, targetID uuid.UUID) ([]*entity.ScheduledMessage, error)

	// Create persists a new message. An unknown target yields
	// domainerrors.ErrUnknownLocation or domainerrors.ErrUnknownGroup.
	Create(ctx context.Context, message *entity.ScheduledMessage) error
}
