package dto

import (
	"time"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

type EventResponse struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Organizer string `json:"organizer"`
}

type TokenResponse struct {
	ID        uint64 `json:"id"`
	EventID   uint64 `json:"event_id"`
	Owner     string `json:"owner"`
	Metadata  string `json:"metadata"`
	CreatedAt string `json:"created_at"`
}

type OwnedTokensResponse struct {
	Account  string   `json:"account"`
	TokenIDs []uint64 `json:"token_ids"`
}

type MinterResponse struct {
	Account    string `json:"account"`
	Authorized bool   `json:"authorized"`
}

type StatsResponse struct {
	EventCount uint64 `json:"event_count"`
	TokenCount uint64 `json:"token_count"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Account   string `json:"account"`
	ExpiresAt string `json:"expires_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:        uint64(e.ID),
		Name:      e.Name,
		Date:      e.Date,
		Location:  e.Location,
		Organizer: string(e.Organizer),
	}
}

func ToTokenResponse(t domain.Token) TokenResponse {
	return TokenResponse{
		ID:        uint64(t.ID),
		EventID:   uint64(t.EventID),
		Owner:     string(t.Owner),
		Metadata:  t.Metadata,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToOwnedTokensResponse(account domain.Account, ids []domain.TokenID) OwnedTokensResponse {
	resp := OwnedTokensResponse{
		Account:  string(account),
		TokenIDs: make([]uint64, 0, len(ids)),
	}
	for _, id := range ids {
		resp.TokenIDs = append(resp.TokenIDs, uint64(id))
	}
	return resp
}

func ToStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		EventCount: s.EventCount,
		TokenCount: s.TokenCount,
	}
}

func ToLoginResponse(s domain.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		Account:   string(s.Account),
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
	}
}
