package dto

type CreateNoteRequest struct {
	Title  string `json:"title" validate:"required,max=255"`
	Body   string `json:"body" validate:"max=100000"`
	Pinned bool   `json:"pinned"`
}

type UpdateNoteRequest struct {
	Version uint    `json:"version" validate:"required"`
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Body    *string `json:"body" validate:"omitempty,max=100000"`
	Pinned  *bool   `json:"pinned"`
}
