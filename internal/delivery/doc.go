// Package delivery resolves catalog entries into outbound messages.
//
// # Two-tier delivery
//
// [Coordinator.Deliver] runs an explicit two-step attempt per entry:
//
//  1. Fast path: when the entry carries a content reference, send it
//     directly with the kind-appropriate method. Any failure here,
//     including an expired reference, is logged and swallowed, never
//     surfaced to the caller.
//  2. Fallback path: re-forward the original archived message by the
//     entry's id. Failures here are classified: unreachable recipients
//     map to [FailedNeedsPrivateChat] (a user-side precondition with an
//     actionable fix), everything else to [FailedPermanently].
//
// # Batches
//
// [Coordinator.DeliverBatch] dispatches entries sequentially with
// per-item isolation: one entry's failure never aborts the rest. The
// result carries a running success count; callers aggregate a single
// "nothing could be sent" message when the count is zero.
package delivery
