package dto

type CreateEventRequest struct {
	Name     string `json:"name" binding:"required"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type MintRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Metadata  string `json:"metadata"`
}

type TransferRequest struct {
	To string `json:"to" binding:"required"`
}

// CheckInRequest is the payload posted by the ticketing platform when a
// guest checks in.
type CheckInRequest struct {
	EventID   uint64 `json:"event_id" binding:"required,gt=0"`
	Recipient string `json:"recipient" binding:"required"`
	Metadata  string `json:"metadata"`
}

type LoginRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required"`
	Message       string `json:"message" binding:"required"`
	Signature     string `json:"signature" binding:"required"`
}
