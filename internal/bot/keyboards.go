package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data values routed by handleCallback. Category buttons carry
// the category name behind the "cat_" prefix.
const (
	cbMainMenu       = "main_menu"
	cbShowCategories = "show_categories"
	cbListAll        = "list_all"
	cbAdminPanel     = "admin_panel"
	cbRefreshCache   = "refresh_cache"
	cbMovieTools     = "movie_tools"
	cbSeriesTools    = "series_tools"
	cbFindDuplicates = "find_duplicates"
	cbAdminStats     = "admin_stats"
	cbAdminBack      = "admin_back"
	cbUserManagement = "user_management"
	cbListUsers      = "list_users"
	cbListSeries     = "list_series"
	cbCategoryPrefix = "cat_"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonSwitch("🔍 Search movies", ""),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📂 Categories", cbShowCategories),
			tgbotapi.NewInlineKeyboardButtonData("🎬 All movies", cbListAll),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📺 Series", cbListSeries),
		),
	)
}

func categoriesKeyboard(categories []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(categories)/2+2)

	// Two category buttons per row keeps the keyboard compact on phones.
	for i := 0; i < len(categories); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(categories[i], cbCategoryPrefix+categories[i]),
		}
		if i+1 < len(categories) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(categories[i+1], cbCategoryPrefix+categories[i+1]))
		}
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Back", cbMainMenu),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminPanelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎬 Movie tools", cbMovieTools),
			tgbotapi.NewInlineKeyboardButtonData("📺 Series tools", cbSeriesTools),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Users", cbUserManagement),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", cbAdminStats),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Refresh cache", cbRefreshCache),
			tgbotapi.NewInlineKeyboardButtonData("🔁 Duplicates", cbFindDuplicates),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back", cbMainMenu),
		),
	)
}

func backToAdminKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back", cbAdminBack),
		),
	)
}

func userToolsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 List users", cbListUsers),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back", cbAdminBack),
		),
	)
}

// startChatKeyboard deep-links the user into a private chat with the
// bot so subsequent deliveries can reach them.
func startChatKeyboard(username string) tgbotapi.InlineKeyboardMarkup {
	url := fmt.Sprintf("https://t.me/%s?start=private", username)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("▶️ Start private chat", url),
		),
	)
}
