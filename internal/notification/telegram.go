package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/istvanv2/giwedding/internal/domain"
)

// TelegramNotifier pings the couple's private chat when a new RSVP lands.
// Best-effort only: a failed notification never affects the submission.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram not configured, rsvp notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRSVPReceived(ctx context.Context, records []domain.Record) {
	if len(records) == 0 {
		return
	}

	main := records[0]
	var b strings.Builder
	fmt.Fprintf(&b, "*New RSVP: %s* (%d %s)\n\n", main.GroupName, len(records), people(len(records)))
	for _, rec := range records {
		status := "not attending"
		if rec.Attending {
			status = "attending, menu: " + rec.Menu
		}
		fmt.Fprintf(&b, "- %s: %s\n", rec.PersonName, status)
	}
	if main.Accommodation {
		fmt.Fprintf(&b, "\nAccommodation needed: %s\n", main.AccommodationDetails)
	}
	if main.Message != "" {
		fmt.Fprintf(&b, "\nMessage: %s\n", main.Message)
	}

	n.send(ctx, b.String())
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
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

func people(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}
