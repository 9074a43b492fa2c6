package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

func upsertMinter(ctx context.Context, tx *sql.Tx, account domain.Account, allowed bool) error {
	query := `INSERT INTO minters (account, allowed, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (account) DO UPDATE
			  SET allowed = EXCLUDED.allowed, updated_at = now()`
	if _, err := tx.ExecContext(ctx, query, string(account), allowed); err != nil {
		return fmt.Errorf("upsert minter: %w", err)
	}
	return nil
}

func (r *LedgerRepository) listMinters(ctx context.Context) (map[domain.Account]bool, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT account, allowed FROM minters`)
	if err != nil {
		return nil, fmt.Errorf("list minters: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.Account]bool)
	for rows.Next() {
		var (
			account string
			allowed bool
		)
		if err = rows.Scan(&account, &allowed); err != nil {
			return nil, fmt.Errorf("scan minter: %w", err)
		}
		res[domain.Account(account)] = allowed
	}

	return res, rows.Err()
}
