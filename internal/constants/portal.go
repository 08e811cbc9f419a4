package constants

type Portal string

const (
	PortalHR Portal = "hr"
	PortalIT Portal = "it"
)

func (p Portal) Valid() bool {
	return p == PortalHR || p == PortalIT
}

type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "inProgress"
	TicketResolved   TicketStatus = "resolved"
)

var ticketTransitions = map[TicketStatus][]TicketStatus{
	TicketOpen:       {TicketInProgress, TicketResolved},
	TicketInProgress: {TicketResolved},
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

// CanTransition reports whether a ticket may move from s to next.
// Resolved tickets are terminal.
func (s TicketStatus) CanTransition(next TicketStatus) bool {
	for _, allowed := range ticketTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
