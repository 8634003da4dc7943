package models

import (
	"strings"
	"testing"
)

func TestParseMediaKind(t *testing.T) {
	cases := map[string]MediaKind{
		"video":    MediaVideo,
		"document": MediaDocument,
		"":         MediaDocument,
		"photo":    MediaDocument,
	}
	for input, want := range cases {
		if got := ParseMediaKind(input); got != want {
			t.Errorf("ParseMediaKind(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestEntryValidate(t *testing.T) {
	valid := Entry{ID: 1, Title: "Inception", Category: "Sci-Fi"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid entry, got %v", err)
	}

	cases := []Entry{
		{ID: 0, Title: "No ID", Category: "Other"},
		{ID: -3, Title: "Negative", Category: "Other"},
		{ID: 1, Category: "Other"},
		{ID: 1, Title: "No Category"},
	}
	for _, entry := range cases {
		if err := entry.Validate(); err == nil {
			t.Errorf("expected validation error for %+v", entry)
		}
	}
}

func TestEntryCaption(t *testing.T) {
	entry := Entry{ID: 1, Title: "Inception", Category: "Sci-Fi"}
	caption := entry.Caption()
	if !strings.Contains(caption, "Inception") || !strings.Contains(caption, "Sci-Fi") {
		t.Errorf("unexpected caption: %q", caption)
	}
}

func TestHasContentRef(t *testing.T) {
	if (Entry{}).HasContentRef() {
		t.Error("empty ref should not count as deliverable")
	}
	if !(Entry{ContentRef: "abc"}).HasContentRef() {
		t.Error("expected content ref to be detected")
	}
}

func TestSeriesValidate(t *testing.T) {
	valid := Series{ID: 1, Title: "Severance S01E01", ContentRef: "ref"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid series, got %v", err)
	}

	if err := (Series{ID: 1, Title: "No Ref"}).Validate(); err == nil {
		t.Error("expected validation error for missing content ref")
	}
}
