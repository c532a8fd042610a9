// Package telegram posts a short run summary to a private chat after each
// emailed digest.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

// SendSummary posts one HTML-formatted message. The summary is best-effort:
// by the time it goes out the digest email has already been delivered.
func (b *Bot) SendSummary(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := b.api.Send(msg)
	return err
}
