package service

import (
	"fmt"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/vedhavyas/go-subkey/v2"
)

const accountIDLen = 32

type Option func(*LedgerService)

// WithSS58Accounts rejects recipients and minter accounts that are not
// SS58-encoded 32-byte account ids.
func WithSS58Accounts() Option {
	return func(s *LedgerService) {
		s.checkAccount = checkSS58
	}
}

func checkSS58(account domain.Account) error {
	_, pub, err := subkey.SS58Decode(string(account))
	if err != nil {
		return fmt.Errorf("%w: %q is not an SS58 address: %v", domain.ErrValidation, account, err)
	}
	if len(pub) != accountIDLen {
		return fmt.Errorf("%w: %q decodes to %d bytes", domain.ErrValidation, account, len(pub))
	}
	return nil
}

func acceptAny(domain.Account) error { return nil }
