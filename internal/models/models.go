package models

import (
	"fmt"
	"time"
)

// MediaKind distinguishes how an entry's content is re-delivered.
type MediaKind string

const (
	MediaDocument MediaKind = "document"
	MediaVideo    MediaKind = "video"
)

// ParseMediaKind maps a stored media type to a [MediaKind].
// Empty or unknown values default to [MediaDocument]; legacy rows
// predate the media_type column.
func ParseMediaKind(s string) MediaKind {
	if s == string(MediaVideo) {
		return MediaVideo
	}
	return MediaDocument
}

// Entry represents one deliverable catalog item.
//
// ID is the message id of the original upload in the archive channel,
// not a surrogate key. ContentRef is the opaque token for direct
// re-delivery and is empty for legacy entries.
type Entry struct {
	ID         int
	Title      string
	Category   string
	ContentRef string
	Kind       MediaKind
	AddedAt    time.Time
}

// Validate checks the catalog invariants: a positive archive id and
// non-empty title and category.
func (e Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("entry requires a positive archive message id, got %d", e.ID)
	}
	if e.Title == "" {
		return fmt.Errorf("entry title must not be empty")
	}
	if e.Category == "" {
		return fmt.Errorf("entry category must not be empty")
	}
	return nil
}

// HasContentRef reports whether the entry can take the direct delivery path.
func (e Entry) HasContentRef() bool {
	return e.ContentRef != ""
}

// Caption renders the user-facing caption attached to delivered media.
func (e Entry) Caption() string {
	return fmt.Sprintf("🎬 %s (%s)", e.Title, e.Category)
}

// Series represents one series episode in the archive.
// Unlike movies, series always carry a content reference.
type Series struct {
	ID         int
	Title      string
	ContentRef string
	Kind       MediaKind
	AddedAt    time.Time
}

// Validate checks the series invariants.
func (s Series) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("series requires a positive archive message id, got %d", s.ID)
	}
	if s.Title == "" {
		return fmt.Errorf("series title must not be empty")
	}
	if s.ContentRef == "" {
		return fmt.Errorf("series content reference must not be empty")
	}
	return nil
}

// Category is a managed category name.
type Category struct {
	ID   int
	Name string
}

// User is a chat user the bot has seen, keyed by the chat platform's user id.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	JoinedAt  time.Time
	Admin     bool
}

// DuplicateGroup reports a title occurring more than once in the catalog.
//
// Grouping is by exact title, case-sensitive and unnormalized, matching
// the store query; titles differing only in case or whitespace are
// counted as distinct.
type DuplicateGroup struct {
	Title string
	Count int
}
