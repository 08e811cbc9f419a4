package dto

import model "workbase.com/workbase/internal/models"

type AskRequest struct {
	ConversationID string `json:"conversation_id" validate:"omitempty,uuid"`
	Prompt         string `json:"prompt" validate:"required,max=8000"`
}

type AskResponse struct {
	ConversationID string                 `json:"conversation_id"`
	Reply          model.AssistantMessage `json:"reply"`
}
