// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the library:
//  1. [CatalogView] : Browse and filter the catalog
//  2. [DuplicatesView] : Review duplicated titles
//  3. [StatsView] : Library counters and cache age
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Catalog loads run as commands so the store never blocks the event loop.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
