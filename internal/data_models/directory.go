package dto

type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Title      string `json:"title" validate:"max=120"`
	Department string `json:"department" validate:"max=120"`
	AvatarURL  string `json:"avatar_url" validate:"omitempty,url"`
}

type UpdateEmployeeRequest struct {
	Version    uint    `json:"version" validate:"required"`
	Name       *string `json:"name" validate:"omitempty,min=1,max=120"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Title      *string `json:"title" validate:"omitempty,max=120"`
	Department *string `json:"department" validate:"omitempty,max=120"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
}

type GiveKudosRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

type CreateAnnouncementRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Body   string `json:"body" validate:"max=10000"`
	Pinned bool   `json:"pinned"`
}
