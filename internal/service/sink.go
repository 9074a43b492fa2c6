package service

import (
	"context"

	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// NotificationSink forwards committed ledger notifications to a Notifier
// without blocking the ledger.
type NotificationSink struct {
	notifier ports.Notifier
	logger   logger.Logger
}

func NewNotificationSink(notifier ports.Notifier, logger logger.Logger) *NotificationSink {
	return &NotificationSink{
		notifier: notifier,
		logger:   logger,
	}
}

func (s *NotificationSink) Emit(ctx context.Context, n domain.Notification) {
	s.logger.Debug("ledger notification",
		logger.String("kind", string(n.Kind)),
		logger.Any("token_id", n.TokenID),
		logger.Any("event_id", n.EventID),
	)

	go s.notifier.Notify(context.WithoutCancel(ctx), n)
}
