package model

import "time"

type ChatRoom struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:80;not null;uniqueIndex" json:"name"`
	Topic     string    `json:"topic"`
	CreatedBy string    `gorm:"size:64;not null" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	RoomID    string    `gorm:"size:36;not null;index:idx_chat_room_created" json:"room_id"`
	AuthorID  string    `gorm:"size:64;not null" json:"author_id"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `gorm:"index:idx_chat_room_created" json:"created_at"`
}
