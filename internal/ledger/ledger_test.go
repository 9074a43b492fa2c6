package ledger

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/clock"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	admin domain.Account = "admin"
	alice domain.Account = "alice"
	bob   domain.Account = "bob"
	carol domain.Account = "carol"
)

var mintTime = time.Date(2025, 4, 16, 18, 0, 0, 0, time.UTC)

type recordingSink struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (s *recordingSink) Emit(_ context.Context, n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, n)
}

func (s *recordingSink) all() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.sent...)
}

type failingStore struct{ err error }

func (f failingStore) Apply(context.Context, Change) error { return f.err }

func newTestLedger(t *testing.T, opts ...Option) (*Ledger, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	opts = append([]Option{WithClock(clock.NewFixed(mintTime)), WithSink(sink)}, opts...)
	return New(admin, opts...), sink
}

// assertConsistent checks both directions of the owner index through the
// public read accessors.
func assertConsistent(t *testing.T, l *Ledger, accounts ...domain.Account) {
	t.Helper()
	require.NoError(t, l.Verify())

	for _, acc := range accounts {
		for _, id := range l.TokensOf(acc) {
			owner, ok := l.OwnerOf(id)
			require.True(t, ok)
			assert.Equal(t, acc, owner)
		}
	}
	for id := domain.TokenID(1); uint64(id) <= l.TokenCount(); id++ {
		owner, ok := l.OwnerOf(id)
		require.True(t, ok)
		count := 0
		for _, owned := range l.TokensOf(owner) {
			if owned == id {
				count++
			}
		}
		assert.Equal(t, 1, count, "token %d", id)
	}
}

func TestLedger_CreateEvent_RoundTrip(t *testing.T) {
	l, sink := newTestLedger(t)

	id, err := l.CreateEvent(context.Background(), alice, "Polkadot Meetup", "2025-04-16", "San Francisco")
	require.NoError(t, err)
	assert.Equal(t, domain.EventID(1), id)

	event, ok := l.Event(id)
	require.True(t, ok)
	assert.Equal(t, domain.Event{
		ID:        1,
		Name:      "Polkadot Meetup",
		Date:      "2025-04-16",
		Location:  "San Francisco",
		Organizer: alice,
	}, event)
	assert.Equal(t, uint64(1), l.EventCount())
	assert.Equal(t, []domain.Notification{domain.EventCreated(1, alice)}, sink.all())
}

func TestLedger_IDsStrictlyIncreasing(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	var lastEvent domain.EventID
	var lastToken domain.TokenID
	for i := 0; i < 20; i++ {
		eventID, err := l.CreateEvent(ctx, alice, "e", "d", "l")
		require.NoError(t, err)
		assert.Greater(t, eventID, lastEvent)
		lastEvent = eventID

		tokenID, err := l.Mint(ctx, admin, eventID, bob, "ipfs://x")
		require.NoError(t, err)
		assert.Greater(t, tokenID, lastToken)
		lastToken = tokenID

		ok, err := l.Transfer(ctx, bob, carol, tokenID)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, uint64(20), l.EventCount())
	assert.Equal(t, uint64(20), l.TokenCount())
	assertConsistent(t, l, bob, carol)
}

func TestLedger_Mint_EventNotFound(t *testing.T) {
	l, sink := newTestLedger(t)

	for _, caller := range []domain.Account{admin, alice, bob} {
		_, err := l.Mint(context.Background(), caller, 42, bob, "meta")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Zero(t, l.TokenCount())
	assert.Empty(t, sink.all())
}

func TestLedger_Mint_Success(t *testing.T) {
	l, sink := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)

	tokenID, err := l.Mint(ctx, admin, eventID, bob, "ipfs://QmHash")
	require.NoError(t, err)
	assert.Equal(t, domain.TokenID(1), tokenID)

	token, ok := l.Token(tokenID)
	require.True(t, ok)
	assert.Equal(t, domain.Token{
		ID:        1,
		EventID:   eventID,
		Owner:     bob,
		Metadata:  "ipfs://QmHash",
		CreatedAt: mintTime,
	}, token)
	assert.Equal(t, []domain.TokenID{tokenID}, l.TokensOf(bob))
	assert.Contains(t, sink.all(), domain.Minted(tokenID, bob, eventID))
	assertConsistent(t, l, bob)
}

func TestLedger_Mint_OrganizerAuthorized(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)

	_, err = l.Mint(ctx, alice, eventID, bob, "")
	require.NoError(t, err)

	// organizer rights are per event
	other, err := l.CreateEvent(ctx, carol, "Other", "2025-05-01", "Paris")
	require.NoError(t, err)
	_, err = l.Mint(ctx, alice, other, bob, "")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestLedger_Mint_NotAuthorizedLeavesCountUnchanged(t *testing.T) {
	l, sink := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	before := l.Snapshot()

	_, err = l.Mint(ctx, bob, eventID, bob, "meta")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.Zero(t, l.TokenCount())
	assert.Equal(t, before, l.Snapshot())
	assert.Len(t, sink.all(), 1)
}

func TestLedger_Mint_GrantThenRetry(t *testing.T) {
	l, _ := newTestLedger(t, WithGeneralMinters(true))
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)

	_, err = l.Mint(ctx, bob, eventID, carol, "meta")
	require.ErrorIs(t, err, domain.ErrNotAuthorized)

	ok, err := l.Grant(ctx, admin, bob)
	require.NoError(t, err)
	require.True(t, ok)

	tokenID, err := l.Mint(ctx, bob, eventID, carol, "meta")
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{tokenID}, l.TokensOf(carol))

	ok, err = l.Revoke(ctx, admin, bob)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = l.Mint(ctx, bob, eventID, carol, "meta")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestLedger_Mint_AllowlistIgnoredWithoutGeneralMinters(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)

	ok, err := l.Grant(ctx, admin, bob)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, l.IsAuthorized(bob))

	_, err = l.Mint(ctx, bob, eventID, carol, "meta")
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestLedger_GrantRevoke_RequireAdmin(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	ok, err := l.Grant(ctx, bob, bob)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, l.IsAuthorized(bob))

	ok, err = l.Revoke(ctx, bob, admin)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, l.IsAuthorized(admin))
}

func TestLedger_TransferScenario(t *testing.T) {
	l, sink := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	tokenID, err := l.Mint(ctx, admin, eventID, bob, "meta")
	require.NoError(t, err)

	ok, err := l.Transfer(ctx, bob, carol, tokenID)
	require.NoError(t, err)
	require.True(t, ok)

	owner, found := l.OwnerOf(tokenID)
	require.True(t, found)
	assert.Equal(t, carol, owner)
	assert.Empty(t, l.TokensOf(bob))
	assert.Equal(t, []domain.TokenID{tokenID}, l.TokensOf(carol))
	assert.Contains(t, sink.all(), domain.Transferred(bob, carol, tokenID))
	assertConsistent(t, l, bob, carol)
}

func TestLedger_Transfer_NonOwnerRefused(t *testing.T) {
	l, sink := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	tokenID, err := l.Mint(ctx, admin, eventID, bob, "meta")
	require.NoError(t, err)
	sent := len(sink.all())

	for _, caller := range []domain.Account{carol, admin, alice} {
		ok, err := l.Transfer(ctx, caller, carol, tokenID)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, []domain.TokenID{tokenID}, l.TokensOf(bob))
	assert.Empty(t, l.TokensOf(carol))
	assert.Len(t, sink.all(), sent)
}

func TestLedger_Transfer_UnknownToken(t *testing.T) {
	l, _ := newTestLedger(t)

	ok, err := l.Transfer(context.Background(), bob, carol, 7)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedger_Transfer_Self(t *testing.T) {
	l, sink := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	first, err := l.Mint(ctx, admin, eventID, bob, "a")
	require.NoError(t, err)
	second, err := l.Mint(ctx, admin, eventID, bob, "b")
	require.NoError(t, err)

	ok, err := l.Transfer(ctx, bob, bob, first)
	require.NoError(t, err)
	require.True(t, ok)

	assert.ElementsMatch(t, []domain.TokenID{first, second}, l.TokensOf(bob))
	assert.Len(t, l.TokensOf(bob), 2)
	assert.Contains(t, sink.all(), domain.Transferred(bob, bob, first))
	assertConsistent(t, l, bob)
}

func TestLedger_TokensOf_UnknownAccount(t *testing.T) {
	l, _ := newTestLedger(t)

	ids := l.TokensOf("nobody")
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	_, ok := l.OwnerOf(1)
	assert.False(t, ok)
	_, ok = l.Token(1)
	assert.False(t, ok)
	_, ok = l.Event(1)
	assert.False(t, ok)
}

func TestLedger_TokensOf_ReturnsCopy(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	tokenID, err := l.Mint(ctx, admin, eventID, bob, "meta")
	require.NoError(t, err)

	ids := l.TokensOf(bob)
	ids[0] = 999
	assert.Equal(t, []domain.TokenID{tokenID}, l.TokensOf(bob))
}

func TestLedger_CreateEvent_CounterOverflow(t *testing.T) {
	l, err := Restore(State{Admin: admin, EventCount: math.MaxUint64})
	require.NoError(t, err)
	before := l.Snapshot()

	_, err = l.CreateEvent(context.Background(), alice, "e", "d", "l")
	assert.ErrorIs(t, err, domain.ErrCounterOverflow)
	assert.Equal(t, before, l.Snapshot())
}

func TestLedger_Mint_CounterOverflow(t *testing.T) {
	sink := &recordingSink{}
	l, err := Restore(State{
		Admin:      admin,
		Events:     []domain.Event{{ID: 1, Name: "e", Organizer: alice}},
		EventCount: 1,
		TokenCount: math.MaxUint64,
	}, WithSink(sink))
	require.NoError(t, err)
	before := l.Snapshot()

	_, err = l.Mint(context.Background(), admin, 1, bob, "meta")
	assert.ErrorIs(t, err, domain.ErrCounterOverflow)
	assert.Equal(t, before, l.Snapshot())
	assert.Empty(t, sink.all())
}

func TestLedger_IDLimit(t *testing.T) {
	l, err := Restore(State{
		Admin:      admin,
		Events:     []domain.Event{{ID: 1, Name: "e", Organizer: alice}, {ID: 2, Name: "f", Organizer: alice}},
		EventCount: 2,
		TokenCount: 0,
	}, WithIDLimit(2))
	require.NoError(t, err)

	_, err = l.CreateEvent(context.Background(), alice, "g", "d", "l")
	assert.ErrorIs(t, err, domain.ErrCounterOverflow)

	_, err = l.Mint(context.Background(), admin, 1, bob, "a")
	require.NoError(t, err)
	_, err = l.Mint(context.Background(), admin, 1, bob, "b")
	require.NoError(t, err)
	_, err = l.Mint(context.Background(), admin, 1, bob, "c")
	assert.ErrorIs(t, err, domain.ErrCounterOverflow)
	assert.Equal(t, uint64(2), l.TokenCount())
	assert.Equal(t, []domain.TokenID{1, 2}, l.TokensOf(bob))

	_, err = Restore(State{Admin: admin, TokenCount: math.MaxInt64 + 1}, WithIDLimit(math.MaxInt64))
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
}

func TestLedger_StoreFailureCommitsNothing(t *testing.T) {
	ctx := context.Background()
	seed, _ := newTestLedger(t)
	eventID, err := seed.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	tokenID, err := seed.Mint(ctx, admin, eventID, bob, "meta")
	require.NoError(t, err)

	storeErr := errors.New("disk full")
	sink := &recordingSink{}
	l, err := Restore(seed.Snapshot(), WithStore(failingStore{err: storeErr}), WithSink(sink))
	require.NoError(t, err)
	before := l.Snapshot()

	_, err = l.CreateEvent(ctx, alice, "x", "y", "z")
	assert.ErrorIs(t, err, storeErr)

	_, err = l.Mint(ctx, admin, eventID, carol, "meta")
	assert.ErrorIs(t, err, storeErr)

	ok, err := l.Transfer(ctx, bob, carol, tokenID)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, ok)

	ok, err = l.Grant(ctx, admin, carol)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, ok)

	assert.Equal(t, before, l.Snapshot())
	assert.Empty(t, sink.all())
}

func TestLedger_StoreReceivesChanges(t *testing.T) {
	var changes []Change
	store := storeFunc(func(_ context.Context, c Change) error {
		changes = append(changes, c)
		return nil
	})
	l, _ := newTestLedger(t, WithStore(store))
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	tokenID, err := l.Mint(ctx, alice, eventID, bob, "meta")
	require.NoError(t, err)
	_, err = l.Transfer(ctx, bob, carol, tokenID)
	require.NoError(t, err)
	_, err = l.Grant(ctx, admin, carol)
	require.NoError(t, err)

	require.Len(t, changes, 4)
	assert.Equal(t, ChangeEventCreated, changes[0].Kind)
	assert.Equal(t, alice, changes[0].Event.Organizer)
	assert.Equal(t, ChangeTokenMinted, changes[1].Kind)
	assert.Equal(t, bob, changes[1].Token.Owner)
	assert.Equal(t, ChangeTokenTransferred, changes[2].Kind)
	assert.Equal(t, bob, changes[2].From)
	assert.Equal(t, carol, changes[2].Token.Owner)
	assert.Equal(t, Change{Kind: ChangeMinterSet, Account: carol, Allowed: true}, changes[3])
}

type storeFunc func(ctx context.Context, c Change) error

func (f storeFunc) Apply(ctx context.Context, c Change) error { return f(ctx, c) }

func TestLedger_RandomOperationsStayConsistent(t *testing.T) {
	l, _ := newTestLedger(t, WithGeneralMinters(true))
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))
	accounts := []domain.Account{admin, alice, bob, carol, "dave"}

	_, err := l.CreateEvent(ctx, alice, "seed", "d", "l")
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		caller := accounts[rng.Intn(len(accounts))]
		other := accounts[rng.Intn(len(accounts))]
		switch rng.Intn(5) {
		case 0:
			_, err = l.CreateEvent(ctx, caller, "e", "d", "l")
			require.NoError(t, err)
		case 1, 2:
			eventID := domain.EventID(rng.Intn(int(l.EventCount())+2) + 1)
			before := l.TokenCount()
			_, err = l.Mint(ctx, caller, eventID, other, "meta")
			if err != nil {
				assert.Equal(t, before, l.TokenCount())
			}
		case 3:
			tokenID := domain.TokenID(rng.Intn(int(l.TokenCount())+2) + 1)
			_, err = l.Transfer(ctx, caller, other, tokenID)
			require.NoError(t, err)
		case 4:
			if rng.Intn(2) == 0 {
				_, err = l.Grant(ctx, caller, other)
			} else {
				_, err = l.Revoke(ctx, caller, other)
			}
			require.NoError(t, err)
		}
		assertConsistent(t, l, accounts...)
	}
}

func TestLedger_ConcurrentMutations(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				id, err := l.Mint(ctx, admin, eventID, bob, "meta")
				if err != nil {
					t.Error(err)
					return
				}
				if _, err := l.Transfer(ctx, bob, carol, id); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(200), l.TokenCount())
	assert.Empty(t, l.TokensOf(bob))
	assert.Len(t, l.TokensOf(carol), 200)
	assertConsistent(t, l, bob, carol)
}

func TestRestore_RoundTripsSnapshot(t *testing.T) {
	l, _ := newTestLedger(t, WithGeneralMinters(true))
	ctx := context.Background()

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "2025-04-16", "Berlin")
	require.NoError(t, err)
	tokenID, err := l.Mint(ctx, alice, eventID, bob, "meta")
	require.NoError(t, err)
	_, err = l.Grant(ctx, admin, carol)
	require.NoError(t, err)

	restored, err := Restore(l.Snapshot(), WithGeneralMinters(true))
	require.NoError(t, err)
	assert.Equal(t, l.Snapshot(), restored.Snapshot())

	owner, ok := restored.OwnerOf(tokenID)
	require.True(t, ok)
	assert.Equal(t, bob, owner)
	assert.True(t, restored.IsAuthorized(carol))

	next, err := restored.Mint(ctx, carol, eventID, carol, "")
	require.NoError(t, err)
	assert.Equal(t, tokenID+1, next)
}

func TestRestore_RejectsInconsistentState(t *testing.T) {
	event := domain.Event{ID: 1, Organizer: alice}
	token := domain.Token{ID: 1, EventID: 1, Owner: bob}

	tests := []struct {
		name  string
		state State
	}{
		{
			name: "token missing from index",
			state: State{
				Admin: admin, Events: []domain.Event{event}, Tokens: []domain.Token{token},
				EventCount: 1, TokenCount: 1,
			},
		},
		{
			name: "index points at wrong owner",
			state: State{
				Admin: admin, Events: []domain.Event{event}, Tokens: []domain.Token{token},
				Owned:      map[domain.Account][]domain.TokenID{bob: {1}, carol: {1}},
				EventCount: 1, TokenCount: 1,
			},
		},
		{
			name: "duplicate index entry",
			state: State{
				Admin: admin, Events: []domain.Event{event}, Tokens: []domain.Token{token},
				Owned:      map[domain.Account][]domain.TokenID{bob: {1, 1}},
				EventCount: 1, TokenCount: 1,
			},
		},
		{
			name: "token for unknown event",
			state: State{
				Admin: admin, Tokens: []domain.Token{token},
				Owned:      map[domain.Account][]domain.TokenID{bob: {1}},
				TokenCount: 1,
			},
		},
		{
			name: "id beyond counter",
			state: State{
				Admin: admin, Events: []domain.Event{event},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.state)
			assert.ErrorIs(t, err, domain.ErrInconsistentState)
		})
	}
}

func TestLedger_Events_SortedByID(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := l.CreateEvent(ctx, alice, name, "d", "l")
		require.NoError(t, err)
	}

	events := l.Events()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, domain.EventID(i+1), e.ID)
	}
}

func TestLedger_Tokens_SortedByID(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()

	assert.Empty(t, l.Tokens())

	eventID, err := l.CreateEvent(ctx, alice, "Meetup", "d", "l")
	require.NoError(t, err)
	for _, to := range []domain.Account{bob, carol, bob} {
		_, err = l.Mint(ctx, alice, eventID, to, "meta")
		require.NoError(t, err)
	}
	ok, err := l.Transfer(ctx, bob, carol, 1)
	require.NoError(t, err)
	require.True(t, ok)

	tokens := l.Tokens()
	require.Len(t, tokens, 3)
	for i, tok := range tokens {
		assert.Equal(t, domain.TokenID(i+1), tok.ID)
		assert.Equal(t, mintTime, tok.CreatedAt)
	}
	assert.Equal(t, carol, tokens[0].Owner)

	tokens[0].Owner = "mallory"
	owner, _ := l.OwnerOf(1)
	assert.Equal(t, carol, owner)
}
