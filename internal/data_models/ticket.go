package dto

import "workbase.com/workbase/internal/constants"

type CreateTicketRequest struct {
	Portal  constants.Portal `json:"portal" validate:"required,oneof=hr it"`
	Subject string           `json:"subject" validate:"required,max=255"`
	Body    string           `json:"body" validate:"max=10000"`
}

type TransitionTicketRequest struct {
	Version uint                   `json:"version" validate:"required"`
	Status  constants.TicketStatus `json:"status" validate:"required,oneof=open inProgress resolved"`
}
