package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/lijaymere/filmzy-bot/internal/models"
)

var (
	_ list.Item = entryItem{}
	_ list.Item = duplicateItem{}
)

// entryItem wraps [models.Entry] to implement [list.Item].
type entryItem struct {
	entry models.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Title }
func (i entryItem) Title() string       { return i.entry.Title }
func (i entryItem) Description() string {
	desc := i.entry.Category
	if !i.entry.HasContentRef() {
		desc = fmt.Sprintf("%s • forward only", desc)
	}
	return desc
}

// duplicateItem wraps [models.DuplicateGroup] to implement [list.Item].
type duplicateItem struct {
	group models.DuplicateGroup
}

func (i duplicateItem) FilterValue() string { return i.group.Title }
func (i duplicateItem) Title() string       { return i.group.Title }
func (i duplicateItem) Description() string {
	return fmt.Sprintf("%d copies", i.group.Count)
}
