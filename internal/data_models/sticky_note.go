package dto

type CreateStickyNoteRequest struct {
	Content    string  `json:"content" validate:"max=2000"`
	Color      string  `json:"color" validate:"omitempty,hexcolor"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width" validate:"gte=0"`
	Height     float64 `json:"height" validate:"gte=0"`
	TTLSeconds int64   `json:"ttl_seconds" validate:"gte=0"`
}

type UpdateStickyNoteRequest struct {
	Version    uint     `json:"version" validate:"required"`
	Content    *string  `json:"content" validate:"omitempty,max=2000"`
	Color      *string  `json:"color" validate:"omitempty,hexcolor"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Width      *float64 `json:"width" validate:"omitempty,gte=0"`
	Height     *float64 `json:"height" validate:"omitempty,gte=0"`
	TTLSeconds *int64   `json:"ttl_seconds" validate:"omitempty,gte=0"`
}
