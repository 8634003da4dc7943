// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/lijaymere/filmzy-bot/internal/models"
)

// MockTransport is a scriptable test double for [services.Transport].
// Push errors onto the queues to fail the corresponding calls; an
// empty queue means success. Every call is recorded.
type MockTransport struct {
	mu sync.Mutex

	SendErrs    []error // consumed by SendContent, in order
	ForwardErrs []error // consumed by Forward, in order
	MessageErrs []error // consumed by SendMessage, in order

	Sent      []SentContent
	Forwarded []ForwardedMessage
	Messages  []SentMessage
}

// SentContent records one SendContent call.
type SentContent struct {
	Dest    int64
	Ref     string
	Kind    models.MediaKind
	Caption string
}

// ForwardedMessage records one Forward call.
type ForwardedMessage struct {
	Dest      int64
	Source    int64
	MessageID int
}

// SentMessage records one SendMessage call.
type SentMessage struct {
	Dest int64
	Text string
}

func (m *MockTransport) SendContent(ctx context.Context, dest int64, ref string, kind models.MediaKind, caption string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentContent{Dest: dest, Ref: ref, Kind: kind, Caption: caption})
	return pop(&m.SendErrs)
}

func (m *MockTransport) Forward(ctx context.Context, dest int64, source int64, messageID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Forwarded = append(m.Forwarded, ForwardedMessage{Dest: dest, Source: source, MessageID: messageID})
	return pop(&m.ForwardErrs)
}

func (m *MockTransport) SendMessage(ctx context.Context, dest int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, SentMessage{Dest: dest, Text: text})
	return pop(&m.MessageErrs)
}

// pop consumes the head of an error queue, treating nil entries and an
// exhausted queue as success.
func pop(queue *[]error) error {
	if len(*queue) == 0 {
		return nil
	}
	err := (*queue)[0]
	*queue = (*queue)[1:]
	return err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
}
