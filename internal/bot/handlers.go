package bot

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lijaymere/filmzy-bot/internal/catalog"
	"github.com/lijaymere/filmzy-bot/internal/models"
)

const welcomeText = "🎬 Welcome to the movie library!\n\n" +
	"Type a movie name to search, or browse with the buttons below."

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if text := strings.TrimSpace(msg.Text); text != "" {
		b.handleSearch(ctx, msg, text)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.sendText(ctx, msg.Chat.ID, welcomeText)
	case "admin":
		if b.isAdmin(ctx, msg.From.ID) {
			b.sendMarkup(ctx, msg.Chat.ID, "🛠 Admin panel", adminPanelKeyboard())
		}
	default:
		b.sendText(ctx, msg.Chat.ID, "Unknown command. Type a movie name to search.")
	}
}

// handleStart registers the user and shows the main menu. Registration
// failures are logged, not surfaced; the menu still renders.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	user := models.User{
		ID:        msg.From.ID,
		Username:  msg.From.UserName,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		JoinedAt:  time.Now(),
	}
	if err := b.users.Upsert(ctx, user); err != nil {
		b.logger.Error("user upsert failed", "user", user.ID, "error", err)
	}

	b.sendMarkup(ctx, msg.Chat.ID, welcomeText, mainMenuKeyboard())
}

// handleSearch runs the term match and dispatches results to the
// requester's private chat, regardless of where the query was typed.
func (b *Bot) handleSearch(ctx context.Context, msg *tgbotapi.Message, query string) {
	minLen := b.config.Cache.MinQueryLength
	if minLen <= 0 {
		minLen = catalog.MinQueryLength
	}
	// Count characters, not bytes; "é" is one character.
	if utf8.RuneCountInString(query) < minLen {
		b.sendText(ctx, msg.Chat.ID, fmt.Sprintf("Query too short, use at least %d characters.", minLen))
		return
	}

	snap, err := b.cache.Ensure(ctx)
	if err != nil {
		b.logger.Error("cache refresh failed during search", "error", err)
		if snap.Len() == 0 {
			b.sendText(ctx, msg.Chat.ID, "The library is unavailable right now, try again in a minute.")
			return
		}
		// Stale results beat no results.
	}

	matches := catalog.Search(snap, query)
	if len(matches) == 0 {
		b.sendText(ctx, msg.Chat.ID, fmt.Sprintf("No movies found for %q.", query))
		return
	}

	b.sendText(ctx, msg.Chat.ID, fmt.Sprintf("Found %d result(s), sending...", len(matches)))
	b.deliverMatches(ctx, msg.Chat.ID, msg.From.ID, matches)
}

// deliverMatches sends entries to the user's private chat and reports
// aggregate failures back to the originating chat.
func (b *Bot) deliverMatches(ctx context.Context, origin int64, dest int64, matches []models.Entry) {
	result := b.coordinator.DeliverBatch(ctx, matches, dest, b.config.Cache.BatchSendCap)
	if !result.AllFailed() {
		return
	}

	if result.NeedsPrivateChat() {
		text := "I can't message you yet. Start a private chat with me first, then search again."
		if err := b.telegram.SendWithMarkup(ctx, origin, text, startChatKeyboard(b.telegram.Username())); err != nil {
			b.logger.Error("private-chat prompt failed", "chat", origin, "error", err)
		}
		return
	}

	b.sendText(ctx, origin, "Sorry, those movies couldn't be sent right now.")
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if err := b.telegram.AnswerCallback(ctx, cb.ID); err != nil {
		b.logger.Warn("callback ack failed", "error", err)
	}
	if cb.Message == nil {
		return
	}

	chat := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	data := cb.Data

	if name, ok := strings.CutPrefix(data, cbCategoryPrefix); ok {
		b.showCategory(ctx, chat, cb.From.ID, name)
		return
	}

	switch data {
	case cbMainMenu:
		b.edit(ctx, chat, messageID, welcomeText, mainMenuKeyboard())
	case cbShowCategories:
		b.showCategories(ctx, chat, messageID)
	case cbListAll:
		b.listAll(ctx, chat, cb.From.ID)
	case cbListSeries:
		b.listSeries(ctx, chat, messageID)
	case cbAdminPanel, cbAdminBack:
		if b.isAdmin(ctx, cb.From.ID) {
			b.edit(ctx, chat, messageID, "🛠 Admin panel", adminPanelKeyboard())
		}
	case cbRefreshCache:
		if b.isAdmin(ctx, cb.From.ID) {
			b.refreshCache(ctx, chat, messageID)
		}
	case cbFindDuplicates:
		if b.isAdmin(ctx, cb.From.ID) {
			b.showDuplicates(ctx, chat, messageID)
		}
	case cbAdminStats:
		if b.isAdmin(ctx, cb.From.ID) {
			b.showStats(ctx, chat, messageID)
		}
	case cbMovieTools:
		if b.isAdmin(ctx, cb.From.ID) {
			b.edit(ctx, chat, messageID,
				"🎬 Movie tools\n\nUse the command line to add, rename or remove movies.",
				backToAdminKeyboard())
		}
	case cbSeriesTools:
		if b.isAdmin(ctx, cb.From.ID) {
			b.edit(ctx, chat, messageID,
				"📺 Series tools\n\nUse the command line to add, rename or remove series.",
				backToAdminKeyboard())
		}
	case cbUserManagement:
		if b.isAdmin(ctx, cb.From.ID) {
			b.edit(ctx, chat, messageID, "👥 User management", userToolsKeyboard())
		}
	case cbListUsers:
		if b.isAdmin(ctx, cb.From.ID) {
			b.showUsers(ctx, chat, messageID)
		}
	default:
		b.logger.Warn("unknown callback", "data", data)
	}
}

func (b *Bot) showCategories(ctx context.Context, chat int64, messageID int) {
	names, err := b.categories.Names(ctx)
	if err != nil {
		b.logger.Error("category listing failed", "error", err)
		b.sendText(ctx, chat, "Couldn't load categories, try again.")
		return
	}

	b.edit(ctx, chat, messageID, "📂 Pick a category:", categoriesKeyboard(names))
}

func (b *Bot) showCategory(ctx context.Context, chat int64, userID int64, name string) {
	snap, err := b.cache.Ensure(ctx)
	if err != nil && snap.Len() == 0 {
		b.sendText(ctx, chat, "The library is unavailable right now, try again in a minute.")
		return
	}

	matches := catalog.FilterByCategory(snap, name)
	if len(matches) == 0 {
		b.sendText(ctx, chat, fmt.Sprintf("No movies in %s yet.", name))
		return
	}

	b.sendText(ctx, chat, fmt.Sprintf("📂 %s — %d movie(s), sending...", name, len(matches)))
	b.deliverMatches(ctx, chat, userID, matches)
}

func (b *Bot) listAll(ctx context.Context, chat int64, userID int64) {
	snap, err := b.cache.Ensure(ctx)
	if err != nil && snap.Len() == 0 {
		b.sendText(ctx, chat, "The library is unavailable right now, try again in a minute.")
		return
	}
	if snap.Len() == 0 {
		b.sendText(ctx, chat, "The library is empty.")
		return
	}

	b.sendText(ctx, chat, fmt.Sprintf("🎬 %d movie(s) in the library, sending the first batch...", snap.Len()))
	b.deliverMatches(ctx, chat, userID, snap.Entries)
}

func (b *Bot) listSeries(ctx context.Context, chat int64, messageID int) {
	series, err := b.series.List(ctx)
	if err != nil {
		b.logger.Error("series listing failed", "error", err)
		b.sendText(ctx, chat, "Couldn't load series, try again.")
		return
	}

	if len(series) == 0 {
		b.edit(ctx, chat, messageID, "No series yet.", mainMenuKeyboard())
		return
	}

	var sb strings.Builder
	sb.WriteString("📺 Series:\n\n")
	for _, s := range series {
		fmt.Fprintf(&sb, "• %s\n", s.Title)
	}
	b.edit(ctx, chat, messageID, sb.String(), mainMenuKeyboard())
}

func (b *Bot) refreshCache(ctx context.Context, chat int64, messageID int) {
	snap, err := b.cache.Refresh(ctx)
	if err != nil {
		b.edit(ctx, chat, messageID, fmt.Sprintf("Refresh failed: %v", err), backToAdminKeyboard())
		return
	}

	b.edit(ctx, chat, messageID,
		fmt.Sprintf("🔄 Cache refreshed, %d entries.", snap.Len()),
		backToAdminKeyboard())
}

func (b *Bot) showDuplicates(ctx context.Context, chat int64, messageID int) {
	groups, err := b.detector.Find(ctx)
	if err != nil {
		b.logger.Error("duplicate scan failed", "error", err)
		b.edit(ctx, chat, messageID, "Duplicate scan failed, try again.", backToAdminKeyboard())
		return
	}

	if len(groups) == 0 {
		b.edit(ctx, chat, messageID, "✅ No duplicate titles found.", backToAdminKeyboard())
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔁 %d duplicated title(s):\n\n", len(groups))
	for _, g := range groups {
		fmt.Fprintf(&sb, "• %s ×%d\n", g.Title, g.Count)
	}
	b.edit(ctx, chat, messageID, sb.String(), backToAdminKeyboard())
}

func (b *Bot) showStats(ctx context.Context, chat int64, messageID int) {
	movies, err := b.entries.Count(ctx)
	if err != nil {
		b.logger.Error("movie count failed", "error", err)
	}
	seriesCount, err := b.series.Count(ctx)
	if err != nil {
		b.logger.Error("series count failed", "error", err)
	}
	userCount, adminCount, err := b.users.Count(ctx)
	if err != nil {
		b.logger.Error("user count failed", "error", err)
	}

	snap := b.cache.Snapshot()
	cacheLine := "never"
	if snap != nil {
		cacheLine = snap.RefreshedAt.Format(time.RFC3339)
	}

	text := fmt.Sprintf(
		"📊 Library stats\n\nMovies: %d\nSeries: %d\nUsers: %d (%d admins)\nCache: %d entries, refreshed %s",
		movies, seriesCount, userCount, adminCount, snap.Len(), cacheLine,
	)
	b.edit(ctx, chat, messageID, text, backToAdminKeyboard())
}

func (b *Bot) showUsers(ctx context.Context, chat int64, messageID int) {
	users, err := b.users.List(ctx)
	if err != nil {
		b.logger.Error("user listing failed", "error", err)
		b.edit(ctx, chat, messageID, "Couldn't load users, try again.", backToAdminKeyboard())
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👥 %d user(s):\n\n", len(users))
	for _, u := range users {
		name := u.Username
		if name == "" {
			name = strings.TrimSpace(u.FirstName + " " + u.LastName)
		}
		marker := ""
		if u.Admin {
			marker = " ⭐"
		}
		fmt.Fprintf(&sb, "• %s (%d)%s\n", name, u.ID, marker)
	}
	b.edit(ctx, chat, messageID, sb.String(), userToolsKeyboard())
}

// handleInline answers inline queries with cached media results. Only
// entries carrying a content reference can be rendered inline.
func (b *Bot) handleInline(ctx context.Context, query *tgbotapi.InlineQuery) {
	text := strings.TrimSpace(query.Query)
	if utf8.RuneCountInString(text) < catalog.MinQueryLength {
		return
	}

	snap, err := b.cache.Ensure(ctx)
	if err != nil && snap.Len() == 0 {
		return
	}

	limit := b.config.Cache.InlineResultCap
	if limit <= 0 {
		limit = 50
	}

	var results []interface{}
	for _, entry := range catalog.Search(snap, text) {
		if !entry.HasContentRef() {
			continue
		}

		id := fmt.Sprintf("%d", entry.ID)
		switch entry.Kind {
		case models.MediaVideo:
			results = append(results, tgbotapi.NewInlineQueryResultCachedVideo(id, entry.ContentRef, entry.Title))
		default:
			results = append(results, tgbotapi.NewInlineQueryResultCachedDocument(id, entry.ContentRef, entry.Title))
		}

		if len(results) >= limit {
			break
		}
	}

	config := tgbotapi.InlineConfig{
		InlineQueryID: query.ID,
		Results:       results,
		CacheTime:     300,
	}
	if err := b.telegram.AnswerInline(ctx, config); err != nil {
		b.logger.Error("inline answer failed", "error", err)
	}
}

func (b *Bot) sendText(ctx context.Context, chat int64, text string) {
	if err := b.telegram.SendMessage(ctx, chat, text); err != nil {
		b.logger.Error("send failed", "chat", chat, "error", err)
	}
}

func (b *Bot) sendMarkup(ctx context.Context, chat int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	if err := b.telegram.SendWithMarkup(ctx, chat, text, markup); err != nil {
		b.logger.Error("send failed", "chat", chat, "error", err)
	}
}

func (b *Bot) edit(ctx context.Context, chat int64, messageID int, text string, markup tgbotapi.InlineKeyboardMarkup) {
	if err := b.telegram.EditMessage(ctx, chat, messageID, text, markup); err != nil {
		b.logger.Error("edit failed", "chat", chat, "error", err)
	}
}
