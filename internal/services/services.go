// package services defines transports for delivering catalog content to chats
package services

import (
	"context"
	"errors"

	"github.com/lijaymere/filmzy-bot/internal/models"
)

var (
	// ErrUnreachable marks delivery failures caused by the recipient not
	// having an open private chat with the bot.
	ErrUnreachable = errors.New("recipient unreachable")

	// ErrDelivery marks all other delivery failures.
	ErrDelivery = errors.New("delivery failed")
)

// Transport is the chat delivery contract consumed by the delivery
// coordinator.
type Transport interface {
	// SendContent delivers media directly via its opaque content
	// reference, using the kind-appropriate send method.
	SendContent(ctx context.Context, dest int64, ref string, kind models.MediaKind, caption string) error

	// Forward re-sends the archived message identified by messageID from
	// the source channel to the destination chat.
	Forward(ctx context.Context, dest int64, source int64, messageID int) error

	// SendMessage sends a plain text message.
	SendMessage(ctx context.Context, dest int64, text string) error
}

// Unreachable reports whether err is in the recipient-unreachable class.
func Unreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}
