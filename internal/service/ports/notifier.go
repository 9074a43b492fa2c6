package ports

import (
	"context"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
