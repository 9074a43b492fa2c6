package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/clock"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/vedhavyas/go-subkey/v2"
	"github.com/vedhavyas/go-subkey/v2/sr25519"
	"github.com/wb-go/wbf/logger"
)

const sr25519SignatureLen = 64

// AuthService exchanges a signed wallet message for a bearer token whose
// subject is the wallet address.
type AuthService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
	logger logger.Logger
}

func NewAuthService(secret []byte, ttl time.Duration, clk clock.Clock, logger logger.Logger) *AuthService {
	return &AuthService{
		secret: secret,
		ttl:    ttl,
		clock:  clk,
		logger: logger,
	}
}

func (s *AuthService) Login(ctx context.Context, input domain.LoginInput) (domain.Session, error) {
	if input.Address == "" || input.Message == "" || input.Signature == "" {
		return domain.Session{}, fmt.Errorf("%w: address, message and signature are required", domain.ErrValidation)
	}

	if err := verifyWalletSignature(input.Address, input.Message, input.Signature); err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "wallet login rejected",
			logger.String("address", string(input.Address)),
			logger.String("error", err.Error()),
		)
		return domain.Session{}, err
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.ttl)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   string(input.Address),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString(s.secret)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("wallet logged in", logger.String("address", string(input.Address)))
	return domain.Session{
		Account:   input.Address,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// verifyWalletSignature accepts a signature over the raw message or over the
// <Bytes>-wrapped form browser wallet extensions sign.
func verifyWalletSignature(address domain.Account, message, signature string) error {
	_, pub, err := subkey.SS58Decode(string(address))
	if err != nil {
		return fmt.Errorf("%w: %q is not an SS58 address: %v", domain.ErrValidation, address, err)
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil || len(sig) != sr25519SignatureLen {
		return fmt.Errorf("%w: signature must be %d hex bytes", domain.ErrValidation, sr25519SignatureLen)
	}

	key, err := sr25519.Scheme{}.FromPublicKey(pub)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if key.Verify([]byte(message), sig) || key.Verify([]byte("<Bytes>"+message+"</Bytes>"), sig) {
		return nil
	}
	return domain.ErrInvalidSignature
}
