package dto

type CreateRoomRequest struct {
	Name  string `json:"name" validate:"required,max=80"`
	Topic string `json:"topic" validate:"max=500"`
}

type PostMessageRequest struct {
	Body string `json:"body" validate:"required,max=4000"`
}
