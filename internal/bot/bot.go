package bot

import (
	"context"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lijaymere/filmzy-bot/internal/catalog"
	"github.com/lijaymere/filmzy-bot/internal/delivery"
	"github.com/lijaymere/filmzy-bot/internal/repositories"
	"github.com/lijaymere/filmzy-bot/internal/shared"
)

// Messenger is the chat surface the handlers reply through.
// Implemented by services.TelegramService.
type Messenger interface {
	Username() string
	Updates(timeout int) tgbotapi.UpdatesChannel
	Stop()
	SendMessage(ctx context.Context, dest int64, text string) error
	SendWithMarkup(ctx context.Context, dest int64, text string, markup tgbotapi.InlineKeyboardMarkup) error
	EditMessage(ctx context.Context, chat int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) error
	AnswerCallback(ctx context.Context, id string) error
	AnswerInline(ctx context.Context, config tgbotapi.InlineConfig) error
}

// Bot holds the collaborators the update handlers need.
type Bot struct {
	telegram    Messenger
	coordinator *delivery.Coordinator
	cache       *catalog.Cache
	detector    *catalog.Detector
	entries     *repositories.CatalogRepository
	series      *repositories.SeriesRepository
	categories  *repositories.CategoryRepository
	users       *repositories.UserRepository
	config      *shared.Config
	logger      *log.Logger
}

// Opts contains the dependencies for creating a Bot.
type Opts struct {
	Telegram    Messenger
	Coordinator *delivery.Coordinator
	Cache       *catalog.Cache
	Detector    *catalog.Detector
	Entries     *repositories.CatalogRepository
	Series      *repositories.SeriesRepository
	Categories  *repositories.CategoryRepository
	Users       *repositories.UserRepository
	Config      *shared.Config
	Logger      *log.Logger
}

// New creates a Bot with the provided dependencies.
func New(opts Opts) *Bot {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Bot{
		telegram:    opts.Telegram,
		coordinator: opts.Coordinator,
		cache:       opts.Cache,
		detector:    opts.Detector,
		entries:     opts.Entries,
		series:      opts.Series,
		categories:  opts.Categories,
		users:       opts.Users,
		config:      opts.Config,
		logger:      opts.Logger,
	}
}

// Run long-polls for updates until the context is cancelled. Each
// update is handled on its own goroutine; a stuck store or transport
// call blocks only that conversation.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("bot starting", "username", b.telegram.Username())

	if _, err := b.cache.Refresh(ctx); err != nil {
		// The bot can serve with an empty cache; read paths retry.
		b.logger.Warn("initial cache refresh failed", "error", err)
	}

	updates := b.telegram.Updates(30)

	for {
		select {
		case <-ctx.Done():
			b.telegram.Stop()
			b.logger.Info("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.dispatch(ctx, update)
		}
	}
}

// dispatch routes one update to its handler.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panicked", "panic", r)
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.InlineQuery != nil:
		b.handleInline(ctx, update.InlineQuery)
	}
}

// isAdmin reports whether the user may use the admin panel: either the
// configured privileged id or a promoted row in the users table.
func (b *Bot) isAdmin(ctx context.Context, userID int64) bool {
	if userID == b.config.Bot.AdminUserID {
		return true
	}

	admin, err := b.users.IsAdmin(ctx, userID)
	if err != nil {
		b.logger.Error("admin lookup failed", "user", userID, "error", err)
		return false
	}
	return admin
}
