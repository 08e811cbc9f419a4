package model

import (
	"time"

	"workbase.com/workbase/internal/constants"
)

// Ticket is a request filed through the HR or IT portal.
type Ticket struct {
	ID        string                 `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string                 `gorm:"size:64;not null;index" json:"owner_id"`
	Portal    constants.Portal       `gorm:"type:varchar(8);not null;index" json:"portal"`
	Subject   string                 `gorm:"not null" json:"subject"`
	Body      string                 `json:"body"`
	Status    constants.TicketStatus `gorm:"type:varchar(20);not null" json:"status"`
	Version   uint                   `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
