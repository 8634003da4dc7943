package bot

import (
	"testing"
)

func TestCategoriesKeyboard(t *testing.T) {
	markup := categoriesKeyboard([]string{"Action", "Horror", "Drama"})

	// Two categories per row, odd one on its own, plus the back row.
	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(markup.InlineKeyboard))
	}
	if len(markup.InlineKeyboard[0]) != 2 || len(markup.InlineKeyboard[1]) != 1 {
		t.Errorf("unexpected row sizes: %d, %d", len(markup.InlineKeyboard[0]), len(markup.InlineKeyboard[1]))
	}

	button := markup.InlineKeyboard[0][0]
	if button.CallbackData == nil || *button.CallbackData != cbCategoryPrefix+"Action" {
		t.Errorf("unexpected callback data: %v", button.CallbackData)
	}

	back := markup.InlineKeyboard[2][0]
	if back.CallbackData == nil || *back.CallbackData != cbMainMenu {
		t.Errorf("expected back button, got %v", back.CallbackData)
	}
}

func TestStartChatKeyboard(t *testing.T) {
	markup := startChatKeyboard("filmzyzonebot")

	button := markup.InlineKeyboard[0][0]
	if button.URL == nil {
		t.Fatal("expected a URL button")
	}
	if *button.URL != "https://t.me/filmzyzonebot?start=private" {
		t.Errorf("unexpected deep link: %s", *button.URL)
	}
}
