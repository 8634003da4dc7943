package services

import (
	"errors"
	"fmt"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestClassify(t *testing.T) {
	t.Run("forbidden is unreachable", func(t *testing.T) {
		err := classify(&tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"})
		if !errors.Is(err, ErrUnreachable) {
			t.Errorf("expected ErrUnreachable, got %v", err)
		}
	})

	t.Run("chat not found is unreachable", func(t *testing.T) {
		err := classify(&tgbotapi.Error{Code: 400, Message: "Bad Request: chat not found"})
		if !errors.Is(err, ErrUnreachable) {
			t.Errorf("expected ErrUnreachable, got %v", err)
		}
	})

	t.Run("other bad requests are delivery failures", func(t *testing.T) {
		err := classify(&tgbotapi.Error{Code: 400, Message: "Bad Request: wrong file identifier"})
		if !errors.Is(err, ErrDelivery) {
			t.Errorf("expected ErrDelivery, got %v", err)
		}
		if errors.Is(err, ErrUnreachable) {
			t.Error("did not expect ErrUnreachable")
		}
	})

	t.Run("rate limits are delivery failures", func(t *testing.T) {
		err := classify(&tgbotapi.Error{Code: 429, Message: "Too Many Requests: retry after 5"})
		if !errors.Is(err, ErrDelivery) {
			t.Errorf("expected ErrDelivery, got %v", err)
		}
	})

	t.Run("non-API errors are delivery failures", func(t *testing.T) {
		err := classify(errors.New("connection reset"))
		if !errors.Is(err, ErrDelivery) {
			t.Errorf("expected ErrDelivery, got %v", err)
		}
	})
}

func TestUnreachable(t *testing.T) {
	if !Unreachable(fmt.Errorf("wrapped: %w", ErrUnreachable)) {
		t.Error("expected wrapped ErrUnreachable to be detected")
	}
	if Unreachable(fmt.Errorf("wrapped: %w", ErrDelivery)) {
		t.Error("did not expect ErrDelivery to be unreachable")
	}
	if Unreachable(nil) {
		t.Error("nil is not unreachable")
	}
}
