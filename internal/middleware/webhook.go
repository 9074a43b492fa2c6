package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

const (
	WebhookSignatureHeader = "X-Webhook-Signature"
	maxWebhookBody         = 1 << 20
)

// WebhookSignature accepts a request only when X-Webhook-Signature carries
// the hex HMAC-SHA256 of the body under key. The body is restored for the
// handler.
func WebhookSignature(key []byte) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		signature, err := hex.DecodeString(c.GetHeader(WebhookSignatureHeader))
		if err != nil || len(signature) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing webhook signature"})
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ginext.H{"error": "body too large"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": "read body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !hmac.Equal(signature, Sign(key, body)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid webhook signature"})
			return
		}

		c.Next()
	}
}

func Sign(key, body []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(body)
	return mac.Sum(nil)
}
