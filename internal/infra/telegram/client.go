// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// Sender is the subset of *telebot.Bot used by TelebotAdapter.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelebotAdapter implements the domain Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot Sender
}

func NewTelebotAdapter(b Sender) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a plain text message to the given chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string) error {
	_, err := tba.bot.Send(telebot.ChatID(chatID), text)
	return err
}

// NewBot creates a send-only telebot.Bot. The token is checked against
// Telegram (getMe) before it is returned; updates are never polled.
func NewBot(token string) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{Token: token})
}
