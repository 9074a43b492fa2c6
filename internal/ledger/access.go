package ledger

import "github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"

// AccessControl holds the admin identity and the minter allowlist.
// It is not safe for concurrent use; the Ledger serializes access to it.
type AccessControl struct {
	admin   domain.Account
	minters map[domain.Account]bool
}

func NewAccessControl(admin domain.Account) *AccessControl {
	return &AccessControl{
		admin:   admin,
		minters: make(map[domain.Account]bool),
	}
}

func (a *AccessControl) Admin() domain.Account {
	return a.admin
}

// IsAuthorized reports whether account may mint on the allowlist's terms.
// The admin is always authorized whatever the map says.
func (a *AccessControl) IsAuthorized(account domain.Account) bool {
	return account == a.admin || a.minters[account]
}

func (a *AccessControl) Grant(caller, account domain.Account) bool {
	return a.set(caller, account, true)
}

func (a *AccessControl) Revoke(caller, account domain.Account) bool {
	return a.set(caller, account, false)
}

func (a *AccessControl) set(caller, account domain.Account, allowed bool) bool {
	if caller != a.admin {
		return false
	}
	a.minters[account] = allowed
	return true
}

func (a *AccessControl) snapshot() map[domain.Account]bool {
	out := make(map[domain.Account]bool, len(a.minters))
	for k, v := range a.minters {
		out[k] = v
	}
	return out
}
