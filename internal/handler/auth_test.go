package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/handler/dto"
	hmocks "github.com/samuelarogbonlo/polkadot-attendance-nft/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupAuthRouter(t *testing.T) (*hmocks.MockAuthSvc, http.Handler) {
	t.Helper()
	svc := hmocks.NewMockAuthSvc(t)
	h := NewAuthHandler(svc)

	r := ginext.New("test")
	r.POST("/api/auth", h.Login)
	return svc, r
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc, r := setupAuthRouter(t)

	input := domain.LoginInput{Address: "5Grw", Message: "hello", Signature: "0xabc"}
	svc.EXPECT().Login(mock.Anything, input).Return(domain.Session{
		Account:   "5Grw",
		Token:     "signed.jwt.token",
		ExpiresAt: mintedAt,
	}, nil)

	w := doRequest(r, http.MethodPost, "/api/auth", "", dto.LoginRequest{
		WalletAddress: "5Grw",
		Message:       "hello",
		Signature:     "0xabc",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, "5Grw", resp.Account)
	assert.Equal(t, "2025-04-16T18:00:00Z", resp.ExpiresAt)
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "bad signature", err: domain.ErrInvalidSignature, wantStatus: http.StatusUnauthorized},
		{name: "bad address", err: fmt.Errorf("%w: not ss58", domain.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "signing failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := setupAuthRouter(t)
			svc.EXPECT().Login(mock.Anything, mock.Anything).Return(domain.Session{}, tt.err)

			w := doRequest(r, http.MethodPost, "/api/auth", "", dto.LoginRequest{
				WalletAddress: "5Grw",
				Message:       "hello",
				Signature:     "0xabc",
			})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	_, r := setupAuthRouter(t)

	w := doRequest(r, http.MethodPost, "/api/auth", "", map[string]string{"wallet_address": "5Grw"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
