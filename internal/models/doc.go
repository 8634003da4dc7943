// Package models defines domain entities for the filmzy catalog bot.
//
// The package contains two categories of types:
//
// 1. Catalog entities backed by the SQLite store:
//   - [Entry] : A deliverable media item indexed by its archive message id
//   - [Series] : A series episode stored alongside movies
//   - [Category] : A managed, deduplicated category name
//   - [User] : A chat user seen by the bot, with an admin flag
//
// 2. Derived values, computed on demand and never persisted:
//   - [DuplicateGroup] : A title appearing more than once in the catalog
//
// Entries carry an optional content reference (an opaque token for direct
// re-delivery) and a [MediaKind] that defaults to [MediaDocument] when the
// stored value is empty or unknown.
package models
