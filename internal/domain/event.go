package domain

// Account is an opaque caller identity supplied by the host.
type Account string

type EventID uint64

// Event is an organizer-authored record tokens are minted against.
// It never changes after creation.
type Event struct {
	ID        EventID `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Location  string  `json:"location"`
	Organizer Account `json:"organizer"`
}

type CreateEventInput struct {
	Caller   Account
	Name     string
	Date     string
	Location string
}

type Stats struct {
	EventCount uint64 `json:"event_count"`
	TokenCount uint64 `json:"token_count"`
}
