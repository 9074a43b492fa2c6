package service

import (
	"context"
	"fmt"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/ledger"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// OpenLedger restores the persisted ledger and attaches store to it so that
// every later change is written through.
func OpenLedger(
	ctx context.Context,
	store ports.LedgerStore,
	admin domain.Account,
	log logger.Logger,
	opts ...ledger.Option,
) (*ledger.Ledger, error) {
	if err := store.EnsureAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("ensure admin: %w", err)
	}

	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	l, err := ledger.Restore(state, append(opts, ledger.WithStore(store))...)
	if err != nil {
		return nil, fmt.Errorf("restore ledger: %w", err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "ledger restored",
		logger.String("admin", string(admin)),
		logger.Int("events", len(state.Events)),
		logger.Int("tokens", len(state.Tokens)),
		logger.Int("minters", len(state.Minters)),
	)
	return l, nil
}
