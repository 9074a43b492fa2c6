package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const callerKey = "caller"

var errMissingSubject = errors.New("token has no subject")

// Auth requires an HS256 bearer token and exposes its subject as the caller
// account for the rest of the chain.
func Auth(secret []byte) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		account, err := parseCaller(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(callerKey, account)
		c.Next()
	}
}

func parseCaller(raw string, secret []byte) (domain.Account, error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errMissingSubject
	}
	return domain.Account(sub), nil
}

// Caller returns the account set by Auth.
func Caller(c *ginext.Context) (domain.Account, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return "", false
	}
	account, ok := v.(domain.Account)
	return account, ok
}
