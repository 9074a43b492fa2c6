package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samuelarogbonlo/polkadot-attendance-nft/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts ledger notifications to a single chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, note domain.Notification) {
	n.send(ctx, formatNotification(note))
}

func formatNotification(note domain.Notification) string {
	switch note.Kind {
	case domain.NotificationEventCreated:
		return fmt.Sprintf("*Event created*\n\nEvent: #%d\nOrganizer: `%s`", note.EventID, note.Organizer)
	case domain.NotificationMint:
		return fmt.Sprintf("*Attendance NFT minted*\n\nToken: #%d\nEvent: #%d\nOwner: `%s`", note.TokenID, note.EventID, note.To)
	case domain.NotificationTransfer:
		return fmt.Sprintf("*Attendance NFT transferred*\n\nToken: #%d\nFrom: `%s`\nTo: `%s`", note.TokenID, note.From, note.To)
	default:
		return fmt.Sprintf("Ledger notification: %s", note.Kind)
	}
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
