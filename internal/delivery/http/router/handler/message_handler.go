package handler

import (
	"net/http"
	"time"

	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MessageHandler serves the scheduled message routes of locations and groups.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(messageUC usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{messageUC: messageUC}
}

// ScheduleMessageRequest represents the request body for scheduling a message
type ScheduleMessageRequest struct {
	ScheduledAt string `json:"scheduled_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Message     string `json:"message" validate:"notblank"`
}

// List returns a handler listing the messages of the target named by ":id".
func (h *MessageHandler) List(target entity.MessageTarget) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		messages, err := h.messageUC.ListMessages(c.Request().Context(), target, id)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, messages)
	}
}

// Schedule returns a handler scheduling a message for the target named by ":id".
func (h *MessageHandler) Schedule(target entity.MessageTarget) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return err
		}

		var req ScheduleMessageRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		// The datetime tag accepted the same layout.
		scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			return err
		}

		message, err := h.messageUC.ScheduleMessage(c.Request().Context(), target, id, &usecase.ScheduleMessageInput{
			ScheduledAt: scheduledAt,
			Message:     req.Message,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, message)
	}
}
