package model

import (
	"time"

	"workbase.com/workbase/internal/constants"
)

type AssistantMessage struct {
	ID             string                `gorm:"primaryKey;size:36" json:"id"`
	OwnerID        string                `gorm:"size:64;not null;index:idx_assistant_conversation" json:"owner_id"`
	ConversationID string                `gorm:"size:36;not null;index:idx_assistant_conversation" json:"conversation_id"`
	Role           constants.MessageRole `gorm:"type:varchar(16);not null" json:"role"`
	Content        string                `gorm:"not null" json:"content"`
	CreatedAt      time.Time             `json:"created_at"`
}
