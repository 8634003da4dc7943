// Telegram transport over the Bot API
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lijaymere/filmzy-bot/internal/models"
	"golang.org/x/time/rate"
)

// DefaultRateLimit is the outbound messages-per-second budget applied
// when the configuration does not set one. The Bot API allows ~30/s
// globally; staying under it avoids 429 churn during batch sends.
const DefaultRateLimit = 25.0

// TelegramService implements [Transport] over the Telegram Bot API.
type TelegramService struct {
	bot     *tgbotapi.BotAPI
	limiter *rate.Limiter
	logger  *log.Logger
}

// NewTelegramService authenticates against the Bot API with the given
// token. A non-positive rateLimit falls back to [DefaultRateLimit].
func NewTelegramService(token string, rateLimit float64, logger *log.Logger) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate bot: %w", err)
	}

	return NewTelegramServiceWithAPI(bot, rateLimit, logger), nil
}

// NewTelegramServiceWithAPI wraps an existing Bot API client.
func NewTelegramServiceWithAPI(bot *tgbotapi.BotAPI, rateLimit float64, logger *log.Logger) *TelegramService {
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}

	return &TelegramService{
		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
		logger:  logger,
	}
}

// Username returns the authenticated bot's username for deep links.
func (t *TelegramService) Username() string {
	return t.bot.Self.UserName
}

// Updates opens the long-poll update channel.
func (t *TelegramService) Updates(timeout int) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout
	return t.bot.GetUpdatesChan(u)
}

// Stop closes the long-poll update channel.
func (t *TelegramService) Stop() {
	t.bot.StopReceivingUpdates()
}

// SendContent delivers media directly via its content reference.
func (t *TelegramService) SendContent(ctx context.Context, dest int64, ref string, kind models.MediaKind, caption string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	var msg tgbotapi.Chattable
	switch kind {
	case models.MediaVideo:
		video := tgbotapi.NewVideo(dest, tgbotapi.FileID(ref))
		video.Caption = caption
		msg = video
	default:
		document := tgbotapi.NewDocument(dest, tgbotapi.FileID(ref))
		document.Caption = caption
		msg = document
	}

	if _, err := t.bot.Send(msg); err != nil {
		return classify(err)
	}

	return nil
}

// Forward re-sends the archived message from the source channel.
func (t *TelegramService) Forward(ctx context.Context, dest int64, source int64, messageID int) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if _, err := t.bot.Send(tgbotapi.NewForward(dest, source, messageID)); err != nil {
		return classify(err)
	}

	return nil
}

// SendMessage sends a plain text message.
func (t *TelegramService) SendMessage(ctx context.Context, dest int64, text string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if _, err := t.bot.Send(tgbotapi.NewMessage(dest, text)); err != nil {
		return classify(err)
	}

	return nil
}

// SendWithMarkup sends a text message with an inline keyboard.
func (t *TelegramService) SendWithMarkup(ctx context.Context, dest int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	msg := tgbotapi.NewMessage(dest, text)
	msg.ReplyMarkup = markup
	if _, err := t.bot.Send(msg); err != nil {
		return classify(err)
	}

	return nil
}

// EditMessage replaces the text and keyboard of an existing message.
func (t *TelegramService) EditMessage(ctx context.Context, chat int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chat, messageID, text, markup)
	if _, err := t.bot.Send(edit); err != nil {
		return classify(err)
	}

	return nil
}

// AnswerCallback acknowledges a callback query so the client stops the
// loading spinner.
func (t *TelegramService) AnswerCallback(ctx context.Context, id string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if _, err := t.bot.Request(tgbotapi.NewCallback(id, "")); err != nil {
		return classify(err)
	}

	return nil
}

// AnswerInline responds to an inline query with cached media results.
func (t *TelegramService) AnswerInline(ctx context.Context, config tgbotapi.InlineConfig) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if _, err := t.bot.Request(config); err != nil {
		return classify(err)
	}

	return nil
}

// classify maps a Bot API error into the transport's sentinel classes.
// Forbidden covers blocked bots and never-started private chats; the
// "chat not found" BadRequest shows up when a user id has no chat yet.
func classify(err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 403 {
			return fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		if apiErr.Code == 400 && strings.Contains(strings.ToLower(apiErr.Message), "chat not found") {
			return fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
	}

	return fmt.Errorf("%w: %v", ErrDelivery, err)
}
