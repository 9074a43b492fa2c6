package app

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/config"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedhavyas/go-subkey/v2/sr25519"
)

const (
	testSecret     = "0123456789abcdef0123456789abcdef"
	testWebhookKey = "check-in-key"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Addr:         ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			IdleTimeout:  time.Second,
		},
		Logger:    config.LoggerConfig{Engine: "slog", Level: "error"},
		Gin:       config.GinConfig{Mode: "test"},
		Scheduler: config.SchedulerConfig{Interval: time.Minute},
		Ledger:    config.LedgerConfig{Admin: "admin", Storage: config.StorageMemory},
		Auth:      config.AuthConfig{JWTSecret: testSecret, TokenTTL: 24 * time.Hour},
		Webhook:   config.WebhookConfig{CheckInKey: testWebhookKey},
	}
}

type client struct {
	t *testing.T
	h http.Handler
}

func (c client) do(method, path, sub string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sub != "" {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": sub,
			"exp": time.Now().Add(time.Hour).Unix(),
		}).
			SignedString([]byte(testSecret))
		require.NoError(c.t, err)
		req.Header.Set("Authorization", "Bearer "+raw)
	}

	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestApp_AttendanceFlow(t *testing.T) {
	a, err := New(memoryConfig())
	require.NoError(t, err)
	c := client{t: t, h: a.Router()}

	code, event := c.do(http.MethodPost, "/api/events", "alice", map[string]string{
		"name":     "Polkadot Meetup",
		"date":     "2025-04-16",
		"location": "San Francisco",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(1), event["id"])
	assert.Equal(t, "alice", event["organizer"])

	code, _ = c.do(http.MethodPost, "/api/events/1/mint", "mallory", map[string]string{"recipient": "mallory"})
	assert.Equal(t, http.StatusForbidden, code)

	code, token := c.do(http.MethodPost, "/api/events/1/mint", "alice", map[string]string{"recipient": "bob"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "bob", token["owner"])

	code, _ = c.do(http.MethodPost, "/api/tokens/1/transfer", "carol", map[string]string{"to": "carol"})
	assert.Equal(t, http.StatusConflict, code)

	code, token = c.do(http.MethodPost, "/api/tokens/1/transfer", "bob", map[string]string{"to": "carol"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "carol", token["owner"])

	code, owned := c.do(http.MethodGet, "/api/accounts/carol/tokens", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{float64(1)}, owned["token_ids"])

	code, stats := c.do(http.MethodGet, "/api/stats", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), stats["event_count"])
	assert.Equal(t, float64(1), stats["token_count"])

	assert.NoError(t, a.ledger.Verify())
}

func TestApp_MinterAdministration(t *testing.T) {
	cfg := memoryConfig()
	cfg.Ledger.AllowGeneralMinters = true
	a, err := New(cfg)
	require.NoError(t, err)
	c := client{t: t, h: a.Router()}

	code, _ := c.do(http.MethodPost, "/api/events", "alice", map[string]string{"name": "Meetup"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = c.do(http.MethodPut, "/api/minters/bob", "alice", nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, minter := c.do(http.MethodPut, "/api/minters/bob", "admin", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, minter["authorized"])

	code, _ = c.do(http.MethodPost, "/api/events/1/mint", "bob", map[string]string{"recipient": "dave"})
	assert.Equal(t, http.StatusCreated, code)

	code, minter = c.do(http.MethodDelete, "/api/minters/bob", "admin", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, minter["authorized"])
}

func TestApp_CheckInWebhook(t *testing.T) {
	a, err := New(memoryConfig())
	require.NoError(t, err)
	c := client{t: t, h: a.Router()}

	code, _ := c.do(http.MethodPost, "/api/events", "alice", map[string]string{"name": "Meetup"})
	require.Equal(t, http.StatusCreated, code)

	body := []byte(`{"event_id":1,"recipient":"guest","metadata":"checked in"}`)
	post := func(signature string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/check-in", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.WebhookSignatureHeader, signature)
		w := httptest.NewRecorder()
		a.Router().ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusUnauthorized, post("00"))
	assert.Equal(t, http.StatusCreated, post(hex.EncodeToString(middleware.Sign([]byte(testWebhookKey), body))))

	owner, ok := a.ledger.OwnerOf(1)
	require.True(t, ok)
	assert.Equal(t, "guest", string(owner))
}

func TestApp_WalletLogin(t *testing.T) {
	a, err := New(memoryConfig())
	require.NoError(t, err)
	c := client{t: t, h: a.Router()}

	wallet, err := sr25519.Scheme{}.Generate()
	require.NoError(t, err)
	address := wallet.SS58Address(42)
	msg := "Sign in to attendance ledger"
	sig, err := wallet.Sign([]byte(msg))
	require.NoError(t, err)

	code, _ := c.do(http.MethodPost, "/api/auth", "", map[string]string{
		"wallet_address": address,
		"message":        msg + "?",
		"signature":      hex.EncodeToString(sig),
	})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, session := c.do(http.MethodPost, "/api/auth", "", map[string]string{
		"wallet_address": address,
		"message":        msg,
		"signature":      hex.EncodeToString(sig),
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, address, session["account"])
	raw, _ := session["token"].(string)
	require.NotEmpty(t, raw)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]string{"name": "Wallet Meetup"}))
	req := httptest.NewRequest(http.MethodPost, "/api/events", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	event, ok := a.ledger.Event(1)
	require.True(t, ok)
	assert.Equal(t, address, string(event.Organizer))
}

func TestApp_ListTokens(t *testing.T) {
	a, err := New(memoryConfig())
	require.NoError(t, err)
	c := client{t: t, h: a.Router()}

	code, _ := c.do(http.MethodPost, "/api/events", "alice", map[string]string{"name": "Meetup"})
	require.Equal(t, http.StatusCreated, code)
	for _, to := range []string{"bob", "carol"} {
		code, _ = c.do(http.MethodPost, "/api/events/1/mint", "alice", map[string]string{"recipient": to})
		require.Equal(t, http.StatusCreated, code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/tokens", nil)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var tokens []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))
	require.Len(t, tokens, 2)
	assert.Equal(t, "bob", tokens[0]["owner"])
	assert.Equal(t, "carol", tokens[1]["owner"])
}
