package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageTarget identifies what a scheduled message is addressed to.
type MessageTarget string

const (
	MessageTargetLocation MessageTarget = "location"
	MessageTargetGroup    MessageTarget = "group"
)

// ScheduledMessage is an announcement scheduled for everyone at a location or in a group.
type ScheduledMessage struct {
	ID          uuid.UUID     `json:"id"`
	Target      MessageTarget `json:"target"`
	TargetID    uuid.UUID     `json:"target_id"` // Location ID or group ID, depending on Target.
	ScheduledAt time.Time     `json:"scheduled_at"`
	Message     string        `json:"message"`
	CreatedAt   time.Time     `json:"created_at"`
}
