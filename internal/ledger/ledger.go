package ledger

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/clock"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

// Ledger owns events, tokens and the owner index. Every mutation runs to
// completion under mu before the next one starts, so readers never see the
// index disagree with a token's owner field.
type Ledger struct {
	mu sync.RWMutex

	access              *AccessControl
	allowGeneralMinters bool

	events map[domain.EventID]domain.Event
	tokens map[domain.TokenID]domain.Token
	owned  map[domain.Account][]domain.TokenID

	eventCount uint64
	tokenCount uint64
	maxID      uint64

	clock clock.Clock
	store Store
	sink  Sink
}

type Option func(*Ledger)

func WithClock(c clock.Clock) Option {
	return func(l *Ledger) {
		if c != nil {
			l.clock = c
		}
	}
}

func WithStore(s Store) Option {
	return func(l *Ledger) {
		if s != nil {
			l.store = s
		}
	}
}

func WithSink(s Sink) Option {
	return func(l *Ledger) {
		if s != nil {
			l.sink = s
		}
	}
}

// WithGeneralMinters lets accounts on the allowlist mint for any event, not
// only the admin and the event's organizer.
func WithGeneralMinters(allow bool) Option {
	return func(l *Ledger) {
		l.allowGeneralMinters = allow
	}
}

// WithIDLimit caps event and token ids at limit for stores that cannot hold
// the full uint64 range.
func WithIDLimit(limit uint64) Option {
	return func(l *Ledger) {
		if limit > 0 {
			l.maxID = limit
		}
	}
}

// New returns an empty ledger administered by admin.
func New(admin domain.Account, opts ...Option) *Ledger {
	return newLedger(admin, opts)
}

// Restore rebuilds a ledger from persisted state. A snapshot whose owner
// index disagrees with its tokens is rejected.
func Restore(state State, opts ...Option) (*Ledger, error) {
	l := newLedger(state.Admin, opts)
	if state.EventCount > l.maxID || state.TokenCount > l.maxID {
		return nil, fmt.Errorf("%w: counters exceed id limit %d", domain.ErrInconsistentState, l.maxID)
	}

	for _, e := range state.Events {
		if _, dup := l.events[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate event %d", domain.ErrInconsistentState, e.ID)
		}
		if uint64(e.ID) == 0 || uint64(e.ID) > state.EventCount {
			return nil, fmt.Errorf("%w: event %d outside counter %d", domain.ErrInconsistentState, e.ID, state.EventCount)
		}
		l.events[e.ID] = e
	}
	for _, t := range state.Tokens {
		if _, dup := l.tokens[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate token %d", domain.ErrInconsistentState, t.ID)
		}
		if uint64(t.ID) == 0 || uint64(t.ID) > state.TokenCount {
			return nil, fmt.Errorf("%w: token %d outside counter %d", domain.ErrInconsistentState, t.ID, state.TokenCount)
		}
		l.tokens[t.ID] = t
	}
	for account, ids := range state.Owned {
		if len(ids) == 0 {
			continue
		}
		l.owned[account] = append([]domain.TokenID(nil), ids...)
	}
	for account, allowed := range state.Minters {
		l.access.minters[account] = allowed
	}
	l.eventCount = state.EventCount
	l.tokenCount = state.TokenCount

	if err := l.verifyLocked(); err != nil {
		return nil, err
	}
	return l, nil
}

func newLedger(admin domain.Account, opts []Option) *Ledger {
	l := &Ledger{
		access: NewAccessControl(admin),
		events: make(map[domain.EventID]domain.Event),
		tokens: make(map[domain.TokenID]domain.Token),
		owned:  make(map[domain.Account][]domain.TokenID),
		clock:  clock.NewSystem(),
		store:  discardStore{},
		sink:   discardSink{},
		maxID:  math.MaxUint64,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateEvent records a new event organized by caller. Anyone may create an
// event; only minting is gated.
func (l *Ledger) CreateEvent(ctx context.Context, caller domain.Account, name, date, location string) (domain.EventID, error) {
	event, err := l.createEvent(ctx, caller, name, date, location)
	if err != nil {
		return 0, err
	}
	l.sink.Emit(ctx, domain.EventCreated(event.ID, event.Organizer))
	return event.ID, nil
}

func (l *Ledger) createEvent(ctx context.Context, caller domain.Account, name, date, location string) (domain.Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.eventCount >= l.maxID {
		return domain.Event{}, fmt.Errorf("create event: %w", domain.ErrCounterOverflow)
	}

	event := domain.Event{
		ID:        domain.EventID(l.eventCount + 1),
		Name:      name,
		Date:      date,
		Location:  location,
		Organizer: caller,
	}
	if err := l.store.Apply(ctx, Change{Kind: ChangeEventCreated, Event: event}); err != nil {
		return domain.Event{}, fmt.Errorf("persist event: %w", err)
	}

	l.events[event.ID] = event
	l.eventCount++
	return event, nil
}

// Mint issues a token for eventID to recipient. The event must exist and the
// caller must be the admin, the event's organizer or, when general minters
// are enabled, on the allowlist.
func (l *Ledger) Mint(ctx context.Context, caller domain.Account, eventID domain.EventID, recipient domain.Account, metadata string) (domain.TokenID, error) {
	token, err := l.mint(ctx, caller, eventID, recipient, metadata)
	if err != nil {
		return 0, err
	}
	l.sink.Emit(ctx, domain.Minted(token.ID, token.Owner, token.EventID))
	return token.ID, nil
}

func (l *Ledger) mint(ctx context.Context, caller domain.Account, eventID domain.EventID, recipient domain.Account, metadata string) (domain.Token, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	event, ok := l.events[eventID]
	if !ok {
		return domain.Token{}, domain.ErrEventNotFound
	}
	if !l.canMint(caller, event) {
		return domain.Token{}, domain.ErrNotAuthorized
	}
	if l.tokenCount >= l.maxID {
		return domain.Token{}, fmt.Errorf("mint: %w", domain.ErrCounterOverflow)
	}

	token := domain.Token{
		ID:        domain.TokenID(l.tokenCount + 1),
		EventID:   eventID,
		Owner:     recipient,
		Metadata:  metadata,
		CreatedAt: l.clock.Now(),
	}
	if err := l.store.Apply(ctx, Change{Kind: ChangeTokenMinted, Token: token}); err != nil {
		return domain.Token{}, fmt.Errorf("persist mint: %w", err)
	}

	l.tokens[token.ID] = token
	l.owned[recipient] = append(l.owned[recipient], token.ID)
	l.tokenCount++
	return token, nil
}

func (l *Ledger) canMint(caller domain.Account, event domain.Event) bool {
	if caller == l.access.Admin() || caller == event.Organizer {
		return true
	}
	return l.allowGeneralMinters && l.access.IsAuthorized(caller)
}

// Transfer moves tokenID from caller to to. It returns false without
// touching state when the token is unknown or not owned by caller.
// Transferring to oneself is allowed and still notifies.
func (l *Ledger) Transfer(ctx context.Context, caller, to domain.Account, tokenID domain.TokenID) (bool, error) {
	ok, err := l.transfer(ctx, caller, to, tokenID)
	if err != nil || !ok {
		return false, err
	}
	l.sink.Emit(ctx, domain.Transferred(caller, to, tokenID))
	return true, nil
}

func (l *Ledger) transfer(ctx context.Context, caller, to domain.Account, tokenID domain.TokenID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	token, ok := l.tokens[tokenID]
	if !ok || token.Owner != caller {
		return false, nil
	}

	token.Owner = to
	if err := l.store.Apply(ctx, Change{Kind: ChangeTokenTransferred, Token: token, From: caller}); err != nil {
		return false, fmt.Errorf("persist transfer: %w", err)
	}

	l.removeOwned(caller, tokenID)
	l.owned[to] = append(l.owned[to], tokenID)
	l.tokens[tokenID] = token
	return true, nil
}

// removeOwned drops every occurrence of id from account's index entry.
func (l *Ledger) removeOwned(account domain.Account, id domain.TokenID) {
	ids := l.owned[account]
	kept := ids[:0]
	for _, owned := range ids {
		if owned != id {
			kept = append(kept, owned)
		}
	}
	if len(kept) == 0 {
		delete(l.owned, account)
		return
	}
	l.owned[account] = kept
}

// Grant adds account to the minter allowlist. Only the admin may call it.
func (l *Ledger) Grant(ctx context.Context, caller, account domain.Account) (bool, error) {
	return l.setMinter(ctx, caller, account, true)
}

// Revoke marks account as not allowed to mint. Only the admin may call it.
func (l *Ledger) Revoke(ctx context.Context, caller, account domain.Account) (bool, error) {
	return l.setMinter(ctx, caller, account, false)
}

func (l *Ledger) setMinter(ctx context.Context, caller, account domain.Account, allowed bool) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.access.Admin() {
		return false, nil
	}
	change := Change{Kind: ChangeMinterSet, Account: account, Allowed: allowed}
	if err := l.store.Apply(ctx, change); err != nil {
		return false, fmt.Errorf("persist minter: %w", err)
	}

	if allowed {
		return l.access.Grant(caller, account), nil
	}
	return l.access.Revoke(caller, account), nil
}
