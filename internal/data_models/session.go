package dto

type StartSessionRequest struct {
	TaskID *string `json:"task_id" validate:"omitempty,uuid"`
}
