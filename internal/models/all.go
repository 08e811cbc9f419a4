package model

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Task{},
		&Subtask{},
		&Note{},
		&StickyNote{},
		&CalendarEvent{},
		&GoogleToken{},
		&Session{},
		&ChatRoom{},
		&ChatMessage{},
		&Employee{},
		&Kudos{},
		&Announcement{},
		&Ticket{},
		&AssistantMessage{},
	}
}
