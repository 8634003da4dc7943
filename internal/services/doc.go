// Package services defines the [Transport] interface for chat delivery and implements it for the Telegram Bot API.
//
// # Transport Interface
//
// The delivery coordinator depends only on [Transport]: sending content
// by reference, forwarding an archived message, and plain text messages.
// The bot glue layer uses the concrete [TelegramService] directly for
// chat-surface operations (keyboards, edits, callback and inline answers)
// that the core never touches.
//
// # Telegram Implementation
//
// [TelegramService] wraps go-telegram-bot-api. All outbound calls pass
// through a shared [rate.Limiter] so bursts of batch deliveries stay
// under the Bot API's global send limit.
//
// # Error Handling
//
// Failures are classified into two sentinel classes:
//   - [ErrUnreachable] : the recipient has no open private chat with the
//     bot (Forbidden, or Bad Request "chat not found"); recoverable by
//     the user starting a chat
//   - [ErrDelivery] : everything else (rate limits, deleted source
//     message, malformed request); non-retryable for that attempt
package services
