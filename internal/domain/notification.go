package domain

type NotificationKind string

const (
	NotificationEventCreated NotificationKind = "event_created"
	NotificationMint         NotificationKind = "mint"
	NotificationTransfer     NotificationKind = "transfer"
)

// Notification is emitted after a state transition has been committed.
// Only the fields relevant to Kind are set:
//   - event_created: EventID, Organizer
//   - mint:          TokenID, To, EventID
//   - transfer:      TokenID, From, To
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	EventID   EventID          `json:"event_id,omitempty"`
	TokenID   TokenID          `json:"token_id,omitempty"`
	Organizer Account          `json:"organizer,omitempty"`
	From      Account          `json:"from,omitempty"`
	To        Account          `json:"to,omitempty"`
}

func EventCreated(id EventID, organizer Account) Notification {
	return Notification{Kind: NotificationEventCreated, EventID: id, Organizer: organizer}
}

func Minted(tokenID TokenID, to Account, eventID EventID) Notification {
	return Notification{Kind: NotificationMint, TokenID: tokenID, To: to, EventID: eventID}
}

func Transferred(from, to Account, tokenID TokenID) Notification {
	return Notification{Kind: NotificationTransfer, TokenID: tokenID, From: from, To: to}
}
