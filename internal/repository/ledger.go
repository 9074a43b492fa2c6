package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lib/pq"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/ledger"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// MaxID is the largest event or token id the BIGINT id columns hold.
const MaxID = math.MaxInt64

// LedgerRepository persists ledger changes to postgres and rebuilds the
// ledger state at boot. It implements ledger.Store.
type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// EnsureAdmin records admin on first boot. A later boot with another admin
// fails with domain.ErrAdminMismatch.
func (r *LedgerRepository) EnsureAdmin(ctx context.Context, admin domain.Account) error {
	query := `INSERT INTO ledger_meta (id, admin) VALUES (1, $1) ON CONFLICT (id) DO NOTHING`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, string(admin)); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}

	stored, err := r.admin(ctx)
	if err != nil {
		return err
	}
	if stored != admin {
		return fmt.Errorf("%w: configured %q, stored %q", domain.ErrAdminMismatch, admin, stored)
	}
	return nil
}

func (r *LedgerRepository) admin(ctx context.Context) (domain.Account, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT admin FROM ledger_meta WHERE id = 1`)
	if err != nil {
		return "", fmt.Errorf("get admin: %w", err)
	}
	var admin string
	if err = row.Scan(&admin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: ledger admin not recorded", domain.ErrNotFound)
		}
		return "", fmt.Errorf("scan admin: %w", err)
	}
	return domain.Account(admin), nil
}

// Apply writes one change in a transaction.
func (r *LedgerRepository) Apply(ctx context.Context, c ledger.Change) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	switch c.Kind {
	case ledger.ChangeEventCreated:
		err = insertEvent(ctx, tx, c.Event)
	case ledger.ChangeTokenMinted:
		err = insertToken(ctx, tx, c.Token)
	case ledger.ChangeTokenTransferred:
		err = moveToken(ctx, tx, c.Token)
	case ledger.ChangeMinterSet:
		err = upsertMinter(ctx, tx, c.Account, c.Allowed)
	default:
		err = fmt.Errorf("unknown change kind %q", c.Kind)
	}
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %v", domain.ErrInconsistentState, err)
		}
		return err
	}

	return tx.Commit()
}

// Load reads the persisted ledger. Counters equal the row counts since ids
// are assigned densely from 1 and nothing is ever deleted.
func (r *LedgerRepository) Load(ctx context.Context) (ledger.State, error) {
	admin, err := r.admin(ctx)
	if err != nil {
		return ledger.State{}, err
	}
	state := ledger.State{Admin: admin}

	if state.Events, err = r.listEvents(ctx); err != nil {
		return ledger.State{}, err
	}
	if state.Tokens, err = r.listTokens(ctx); err != nil {
		return ledger.State{}, err
	}
	if state.Owned, err = r.listOwned(ctx); err != nil {
		return ledger.State{}, err
	}
	if state.Minters, err = r.listMinters(ctx); err != nil {
		return ledger.State{}, err
	}
	state.EventCount = uint64(len(state.Events))
	state.TokenCount = uint64(len(state.Tokens))

	return state, nil
}
