package delivery

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lijaymere/filmzy-bot/internal/models"
	"github.com/lijaymere/filmzy-bot/internal/services"
	"github.com/lijaymere/filmzy-bot/internal/shared"
)

// Outcome is the tagged result of one delivery attempt.
type Outcome int

const (
	// Delivered means the fast path succeeded.
	Delivered Outcome = iota
	// DeliveredViaFallback means the fast path was skipped or failed and
	// the archived message was forwarded instead.
	DeliveredViaFallback
	// FailedNeedsPrivateChat means the recipient must start a private
	// chat with the bot before delivery can work.
	FailedNeedsPrivateChat
	// FailedPermanently means the attempt failed for a non-recoverable
	// reason (rate limit, deleted archive message, malformed request).
	FailedPermanently
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case DeliveredViaFallback:
		return "delivered_via_fallback"
	case FailedNeedsPrivateChat:
		return "failed_needs_private_chat"
	case FailedPermanently:
		return "failed_permanently"
	default:
		return ""
	}
}

// Sent reports whether the outcome counts as a successful delivery.
func (o Outcome) Sent() bool {
	return o == Delivered || o == DeliveredViaFallback
}

// BatchResult accumulates per-item outcomes for one dispatch.
type BatchResult struct {
	BatchID   string    // correlation id for log lines
	Attempted int       // entries dispatched
	Sent      int       // entries that reached the recipient
	Outcomes  []Outcome // per-entry outcome, in dispatch order
}

// AllFailed reports whether nothing in the batch reached the recipient.
func (r BatchResult) AllFailed() bool {
	return r.Attempted > 0 && r.Sent == 0
}

// NeedsPrivateChat reports whether any item failed because the
// recipient has no open private chat.
func (r BatchResult) NeedsPrivateChat() bool {
	for _, outcome := range r.Outcomes {
		if outcome == FailedNeedsPrivateChat {
			return true
		}
	}
	return false
}

// Coordinator resolves catalog entries to outbound sends against the
// archive channel.
type Coordinator struct {
	transport services.Transport
	archive   int64 // storage channel holding the original uploads
	logger    *log.Logger
}

// NewCoordinator creates a Coordinator forwarding from the given
// archive channel.
func NewCoordinator(transport services.Transport, archive int64, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Coordinator{
		transport: transport,
		archive:   archive,
		logger:    logger,
	}
}

// Deliver attempts the fast path, then the fallback, and classifies the
// result. Fast-path errors never reach the caller.
func (c *Coordinator) Deliver(ctx context.Context, entry models.Entry, dest int64) Outcome {
	return c.deliver(ctx, entry, dest, c.logger)
}

func (c *Coordinator) deliver(ctx context.Context, entry models.Entry, dest int64, logger *log.Logger) Outcome {
	if entry.HasContentRef() {
		err := c.transport.SendContent(ctx, dest, entry.ContentRef, entry.Kind, entry.Caption())
		if err == nil {
			logger.Info("delivered entry", "entry", entry.ID, "dest", dest, "path", "fast")
			return Delivered
		}
		logger.Warn("content send failed, falling back to forward", "entry", entry.ID, "dest", dest, "error", err)
	}

	err := c.transport.Forward(ctx, dest, c.archive, entry.ID)
	if err == nil {
		logger.Info("delivered entry", "entry", entry.ID, "dest", dest, "path", "fallback")
		return DeliveredViaFallback
	}

	if services.Unreachable(err) {
		logger.Error("recipient unreachable", "entry", entry.ID, "dest", dest, "error", err)
		return FailedNeedsPrivateChat
	}

	logger.Error("forward failed", "entry", entry.ID, "dest", dest, "error", err)
	return FailedPermanently
}

// DeliverBatch dispatches entries sequentially, capping the batch at
// limit when positive. Each attempt is independent; a failure never
// aborts the remaining items.
func (c *Coordinator) DeliverBatch(ctx context.Context, entries []models.Entry, dest int64, limit int) BatchResult {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	result := BatchResult{
		BatchID:  shared.GenerateID(),
		Outcomes: make([]Outcome, 0, len(entries)),
	}

	// Per-item lines carry the batch id so one dispatch greps as a unit.
	logger := shared.WithLogger(c.logger, "batch", result.BatchID)

	for _, entry := range entries {
		outcome := c.deliver(ctx, entry, dest, logger)
		result.Attempted++
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Sent() {
			result.Sent++
		}
	}

	logger.Info("batch dispatched", "attempted", result.Attempted, "sent", result.Sent)
	return result
}
