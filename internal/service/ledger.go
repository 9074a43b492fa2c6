package service

import (
	"context"
	"fmt"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/ledger"
	"github.com/wb-go/wbf/logger"
)

type LedgerService struct {
	ledger       *ledger.Ledger
	logger       logger.Logger
	checkAccount func(domain.Account) error
}

func NewLedgerService(l *ledger.Ledger, logger logger.Logger, opts ...Option) *LedgerService {
	s := &LedgerService{
		ledger:       l,
		logger:       logger,
		checkAccount: acceptAny,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LedgerService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (domain.Event, error) {
	if input.Caller == "" {
		return domain.Event{}, fmt.Errorf("%w: caller is required", domain.ErrValidation)
	}
	if input.Name == "" {
		return domain.Event{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	id, err := s.ledger.CreateEvent(ctx, input.Caller, input.Name, input.Date, input.Location)
	if err != nil {
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.Any("event_id", id),
		logger.String("organizer", string(input.Caller)),
	)

	event, _ := s.ledger.Event(id)
	return event, nil
}

func (s *LedgerService) Mint(ctx context.Context, input domain.MintInput) (domain.Token, error) {
	if input.Caller == "" {
		return domain.Token{}, fmt.Errorf("%w: caller is required", domain.ErrValidation)
	}
	if input.Recipient == "" {
		return domain.Token{}, fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}
	if err := s.checkAccount(input.Recipient); err != nil {
		return domain.Token{}, err
	}

	id, err := s.ledger.Mint(ctx, input.Caller, input.EventID, input.Recipient, input.Metadata)
	if err != nil {
		return domain.Token{}, fmt.Errorf("mint: %w", err)
	}

	s.logger.Info("token minted",
		logger.Any("token_id", id),
		logger.Any("event_id", input.EventID),
		logger.String("recipient", string(input.Recipient)),
		logger.String("minter", string(input.Caller)),
	)

	token, _ := s.ledger.Token(id)
	return token, nil
}

// CheckIn mints an attendance credential for a checked-in guest. The
// ticketing integration acts with the admin's authority.
func (s *LedgerService) CheckIn(ctx context.Context, input domain.CheckInInput) (domain.Token, error) {
	return s.Mint(ctx, domain.MintInput{
		Caller:    s.ledger.Admin(),
		EventID:   input.EventID,
		Recipient: input.Recipient,
		Metadata:  input.Metadata,
	})
}

// Transfer moves a token and returns it with its new owner. A refusal by the
// ledger is reported as domain.ErrTokenNotFound or domain.ErrTransferDenied.
func (s *LedgerService) Transfer(ctx context.Context, input domain.TransferInput) (domain.Token, error) {
	if input.Caller == "" {
		return domain.Token{}, fmt.Errorf("%w: caller is required", domain.ErrValidation)
	}
	if input.To == "" {
		return domain.Token{}, fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}
	if err := s.checkAccount(input.To); err != nil {
		return domain.Token{}, err
	}

	ok, err := s.ledger.Transfer(ctx, input.Caller, input.To, input.TokenID)
	if err != nil {
		return domain.Token{}, fmt.Errorf("transfer: %w", err)
	}
	if !ok {
		if _, exists := s.ledger.Token(input.TokenID); !exists {
			return domain.Token{}, domain.ErrTokenNotFound
		}
		return domain.Token{}, domain.ErrTransferDenied
	}

	s.logger.Info("token transferred",
		logger.Any("token_id", input.TokenID),
		logger.String("from", string(input.Caller)),
		logger.String("to", string(input.To)),
	)

	token, _ := s.ledger.Token(input.TokenID)
	return token, nil
}

func (s *LedgerService) GrantMinter(ctx context.Context, caller, account domain.Account) error {
	return s.setMinter(ctx, caller, account, true)
}

func (s *LedgerService) RevokeMinter(ctx context.Context, caller, account domain.Account) error {
	return s.setMinter(ctx, caller, account, false)
}

func (s *LedgerService) setMinter(ctx context.Context, caller, account domain.Account, allowed bool) error {
	if caller != s.ledger.Admin() {
		return domain.ErrNotAuthorized
	}
	if account == "" {
		return fmt.Errorf("%w: account is required", domain.ErrValidation)
	}
	if err := s.checkAccount(account); err != nil {
		return err
	}

	var (
		ok  bool
		err error
	)
	if allowed {
		ok, err = s.ledger.Grant(ctx, caller, account)
	} else {
		ok, err = s.ledger.Revoke(ctx, caller, account)
	}
	if err != nil {
		return fmt.Errorf("set minter: %w", err)
	}
	if !ok {
		return domain.ErrNotAuthorized
	}

	s.logger.Info("minter updated",
		logger.String("account", string(account)),
		logger.Any("allowed", allowed),
	)
	return nil
}

func (s *LedgerService) IsMinter(account domain.Account) bool {
	return s.ledger.IsAuthorized(account)
}

func (s *LedgerService) GetEvent(id domain.EventID) (domain.Event, error) {
	event, ok := s.ledger.Event(id)
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return event, nil
}

func (s *LedgerService) ListEvents() []domain.Event {
	return s.ledger.Events()
}

func (s *LedgerService) GetToken(id domain.TokenID) (domain.Token, error) {
	token, ok := s.ledger.Token(id)
	if !ok {
		return domain.Token{}, domain.ErrTokenNotFound
	}
	return token, nil
}

func (s *LedgerService) ListTokens() []domain.Token {
	return s.ledger.Tokens()
}

func (s *LedgerService) TokensOf(account domain.Account) []domain.TokenID {
	return s.ledger.TokensOf(account)
}

func (s *LedgerService) Stats() domain.Stats {
	return domain.Stats{
		EventCount: s.ledger.EventCount(),
		TokenCount: s.ledger.TokenCount(),
	}
}

// Audit cross-checks the owner index against token owners.
func (s *LedgerService) Audit(ctx context.Context) error {
	if err := s.ledger.Verify(); err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "ledger audit failed",
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("audit: %w", err)
	}

	s.logger.Debug("ledger audit passed",
		logger.Int64("events", int64(s.ledger.EventCount())),
		logger.Int64("tokens", int64(s.ledger.TokenCount())),
	)
	return nil
}
