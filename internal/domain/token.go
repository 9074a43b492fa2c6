package domain

import "time"

type TokenID uint64

// Token is a non-fungible attendance credential bound to one event.
type Token struct {
	ID        TokenID   `json:"id"`
	EventID   EventID   `json:"event_id"`
	Owner     Account   `json:"owner"`
	Metadata  string    `json:"metadata"`
	CreatedAt time.Time `json:"created_at"`
}

type MintInput struct {
	Caller    Account
	EventID   EventID
	Recipient Account
	Metadata  string
}

type TransferInput struct {
	Caller  Account
	To      Account
	TokenID TokenID
}

// CheckInInput is an attendee check-in reported by the ticketing webhook.
// The credential is minted on behalf of the ledger admin.
type CheckInInput struct {
	EventID   EventID
	Recipient Account
	Metadata  string
}
