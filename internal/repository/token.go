package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

func insertToken(ctx context.Context, tx *sql.Tx, t domain.Token) error {
	query := `INSERT INTO tokens (id, event_id, owner, metadata, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := tx.ExecContext(
		ctx, query, int64(t.ID), int64(t.EventID),
		string(t.Owner), t.Metadata, t.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}

	ownedQuery := `INSERT INTO owned_tokens (token_id, account) VALUES ($1, $2)`
	if _, err := tx.ExecContext(ctx, ownedQuery, int64(t.ID), string(t.Owner)); err != nil {
		return fmt.Errorf("index token: %w", err)
	}
	return nil
}

// moveToken sets the new owner and puts the token at the end of the new
// owner's acquisition order.
func moveToken(ctx context.Context, tx *sql.Tx, t domain.Token) error {
	res, err := tx.ExecContext(ctx, `UPDATE tokens SET owner = $2 WHERE id = $1`, int64(t.ID), string(t.Owner))
	if err != nil {
		return fmt.Errorf("update token owner: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("token rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("move token %d: %w", t.ID, domain.ErrTokenNotFound)
	}

	query := `UPDATE owned_tokens
			  SET account = $2, position = nextval('owned_tokens_position_seq')
			  WHERE token_id = $1`
	if _, err = tx.ExecContext(ctx, query, int64(t.ID), string(t.Owner)); err != nil {
		return fmt.Errorf("reindex token: %w", err)
	}
	return nil
}

func (r *LedgerRepository) listTokens(ctx context.Context) ([]domain.Token, error) {
	query := `SELECT id, event_id, owner, metadata, created_at
			  FROM tokens
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	defer rows.Close()

	var res []domain.Token
	for rows.Next() {
		var (
			t           domain.Token
			id, eventID int64
			owner       string
		)
		if err = rows.Scan(&id, &eventID, &owner, &t.Metadata, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		t.ID = domain.TokenID(id)
		t.EventID = domain.EventID(eventID)
		t.Owner = domain.Account(owner)
		t.CreatedAt = t.CreatedAt.UTC()
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *LedgerRepository) listOwned(ctx context.Context) (map[domain.Account][]domain.TokenID, error) {
	query := `SELECT account, token_id
			  FROM owned_tokens
			  ORDER BY position`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list owned tokens: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.Account][]domain.TokenID)
	for rows.Next() {
		var (
			account string
			id      int64
		)
		if err = rows.Scan(&account, &id); err != nil {
			return nil, fmt.Errorf("scan owned token: %w", err)
		}
		res[domain.Account(account)] = append(res[domain.Account(account)], domain.TokenID(id))
	}

	return res, rows.Err()
}
