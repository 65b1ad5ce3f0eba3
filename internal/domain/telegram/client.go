package telegram

import "errors"

// ErrSendMessage is returned when a message could not be delivered to Telegram.
var ErrSendMessage = errors.New("failed to send telegram message")

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(chatID int64, text string) error
}
