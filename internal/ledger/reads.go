package ledger

import (
	"fmt"
	"sort"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

func (l *Ledger) Admin() domain.Account {
	return l.access.Admin()
}

func (l *Ledger) IsAuthorized(account domain.Account) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.access.IsAuthorized(account)
}

func (l *Ledger) OwnerOf(id domain.TokenID) (domain.Account, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	token, ok := l.tokens[id]
	if !ok {
		return "", false
	}
	return token.Owner, true
}

// TokensOf returns the ids owned by account in acquisition order. Unknown
// accounts get an empty slice.
func (l *Ledger) TokensOf(account domain.Account) []domain.TokenID {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := l.owned[account]
	out := make([]domain.TokenID, len(ids))
	copy(out, ids)
	return out
}

func (l *Ledger) Event(id domain.EventID) (domain.Event, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.events[id]
	return e, ok
}

// Events lists every event in id order.
func (l *Ledger) Events() []domain.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Event, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Ledger) Token(id domain.TokenID) (domain.Token, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.tokens[id]
	return t, ok
}

// Tokens lists every token in id order.
func (l *Ledger) Tokens() []domain.Token {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Token, 0, len(l.tokens))
	for _, t := range l.tokens {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Ledger) EventCount() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.eventCount
}

func (l *Ledger) TokenCount() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tokenCount
}

// Snapshot copies the full ledger state. Restore(l.Snapshot()) yields an
// equivalent ledger.
func (l *Ledger) Snapshot() State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	state := State{
		Admin:      l.access.Admin(),
		Events:     make([]domain.Event, 0, len(l.events)),
		Tokens:     make([]domain.Token, 0, len(l.tokens)),
		Owned:      make(map[domain.Account][]domain.TokenID, len(l.owned)),
		Minters:    l.access.snapshot(),
		EventCount: l.eventCount,
		TokenCount: l.tokenCount,
	}
	for _, e := range l.events {
		state.Events = append(state.Events, e)
	}
	sort.Slice(state.Events, func(i, j int) bool { return state.Events[i].ID < state.Events[j].ID })
	for _, t := range l.tokens {
		state.Tokens = append(state.Tokens, t)
	}
	sort.Slice(state.Tokens, func(i, j int) bool { return state.Tokens[i].ID < state.Tokens[j].ID })
	for account, ids := range l.owned {
		state.Owned[account] = append([]domain.TokenID(nil), ids...)
	}
	return state
}

// Verify checks that the owner index and the tokens' owner fields agree in
// both directions and that every token references a known event.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verifyLocked()
}

func (l *Ledger) verifyLocked() error {
	for id, token := range l.tokens {
		if _, ok := l.events[token.EventID]; !ok {
			return fmt.Errorf("%w: token %d references missing event %d", domain.ErrInconsistentState, id, token.EventID)
		}
		seen := 0
		for _, owned := range l.owned[token.Owner] {
			if owned == id {
				seen++
			}
		}
		if seen != 1 {
			return fmt.Errorf("%w: token %d listed %d times for owner %q", domain.ErrInconsistentState, id, seen, token.Owner)
		}
	}
	for account, ids := range l.owned {
		for _, id := range ids {
			token, ok := l.tokens[id]
			if !ok {
				return fmt.Errorf("%w: %q indexes unknown token %d", domain.ErrInconsistentState, account, id)
			}
			if token.Owner != account {
				return fmt.Errorf("%w: %q indexes token %d owned by %q", domain.ErrInconsistentState, account, id, token.Owner)
			}
		}
	}
	return nil
}
