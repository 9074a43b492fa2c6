package domain

import "time"

// LoginInput is a wallet's proof of control: Signature is the hex sr25519
// signature of Message by the key behind Address.
type LoginInput struct {
	Address   Account
	Message   string
	Signature string
}

type Session struct {
	Account   Account
	Token     string
	ExpiresAt time.Time
}
