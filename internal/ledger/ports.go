package ledger

import (
	"context"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

// Store durably records a single state change. The ledger calls Apply while
// holding its write lock and only mutates memory once Apply returns nil.
type Store interface {
	Apply(ctx context.Context, change Change) error
}

// Sink receives notifications after a change has been committed. Emission is
// best effort: the ledger ignores whatever the sink does with them.
type Sink interface {
	Emit(ctx context.Context, n domain.Notification)
}

type ChangeKind string

const (
	ChangeEventCreated     ChangeKind = "event_created"
	ChangeTokenMinted      ChangeKind = "token_minted"
	ChangeTokenTransferred ChangeKind = "token_transferred"
	ChangeMinterSet        ChangeKind = "minter_set"
)

// Change describes one committed mutation.
//
// event_created carries Event; token_minted carries the new Token;
// token_transferred carries the Token with its new owner plus From;
// minter_set carries Account and Allowed.
type Change struct {
	Kind    ChangeKind
	Event   domain.Event
	Token   domain.Token
	From    domain.Account
	Account domain.Account
	Allowed bool
}

// State is everything needed to rebuild a ledger.
type State struct {
	Admin      domain.Account
	Events     []domain.Event
	Tokens     []domain.Token
	Owned      map[domain.Account][]domain.TokenID
	Minters    map[domain.Account]bool
	EventCount uint64
	TokenCount uint64
}

type discardStore struct{}

func (discardStore) Apply(context.Context, Change) error { return nil }

type discardSink struct{}

func (discardSink) Emit(context.Context, domain.Notification) {}
