package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

func insertEvent(ctx context.Context, tx *sql.Tx, e domain.Event) error {
	query := `INSERT INTO events (id, name, date, location, organizer)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.ExecContext(ctx, query, int64(e.ID), e.Name, e.Date, e.Location, string(e.Organizer))
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *LedgerRepository) listEvents(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, name, date, location, organizer
			  FROM events
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []domain.Event
	for rows.Next() {
		var (
			e         domain.Event
			id        int64
			organizer string
		)
		if err = rows.Scan(&id, &e.Name, &e.Date, &e.Location, &organizer); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.ID = domain.EventID(id)
		e.Organizer = domain.Account(organizer)
		res = append(res, e)
	}

	return res, rows.Err()
}
