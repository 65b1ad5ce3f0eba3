// internal/app/notifier.go
package app

import (
	"fmt"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers messages to the single chat the bot reports to.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger *logrus.Logger
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger *logrus.Logger) *Notifier {
	return &Notifier{client: client, chatID: chatID, logger: logger}
}

// Send delivers message to the configured chat.
func (n *Notifier) Send(message string) error {
	if err := n.client.SendMessage(n.chatID, message); err != nil {
		n.logger.WithError(err).WithField("chat_id", n.chatID).Error("Failed to send message to Telegram")
		return fmt.Errorf("%w: %w", domainTelegram.ErrSendMessage, err)
	}
	n.logger.WithField("chat_id", n.chatID).Debugf("Message sent to Telegram: %q", message)
	return nil
}
