package ports

import (
	"context"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/ledger"
)

// LedgerStore is the durable side of the ledger: it accepts every change
// and hands the full state back at boot.
type LedgerStore interface {
	Apply(ctx context.Context, c ledger.Change) error
	EnsureAdmin(ctx context.Context, admin domain.Account) error
	Load(ctx context.Context) (ledger.State, error)
}
