package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lijaymere/filmzy-bot/internal/catalog"
	"github.com/lijaymere/filmzy-bot/internal/models"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CatalogView ViewState = iota
	DuplicatesView
	StatsView
)

// Counter provides the counts shown on the stats view.
// Implemented by repositories.UserRepository.
type Counter interface {
	Count(ctx context.Context) (int, int, error)
}

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	cache    *catalog.Cache
	detector *catalog.Detector
	users    Counter
	width    int
	height   int

	entryList  list.Model
	dupeList   list.Model
	snapshot   *catalog.Snapshot
	groups     []models.DuplicateGroup
	userCount  int
	adminCount int
	err        error
	help       help.Model
	keys       keyMap
}

type catalogLoadedMsg struct {
	snap *catalog.Snapshot
	err  error
}

type duplicatesLoadedMsg struct {
	groups []models.DuplicateGroup
	err    error
}

type statsLoadedMsg struct {
	users  int
	admins int
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, cache *catalog.Cache, detector *catalog.Detector, users Counter) *Model {
	return &Model{
		ctx:      ctx,
		view:     CatalogView,
		cache:    cache,
		detector: detector,
		users:    users,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init initializes the TUI by loading the catalog.
func (m *Model) Init() tea.Cmd {
	return m.loadCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.entryList.Width() == 0 {
			m.entryList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.dupeList.Width() == 0 {
			m.dupeList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case CatalogView:
			return m.handleCatalogKeys(msg)
		case DuplicatesView:
			return m.handleDuplicatesKeys(msg)
		case StatsView:
			return m.handleStatsKeys(msg)
		}

	case catalogLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.snapshot = msg.snap
		items := make([]list.Item, msg.snap.Len())
		for i, entry := range msg.snap.Entries {
			items[i] = entryItem{entry: entry}
		}
		m.entryList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.entryList.Title = fmt.Sprintf("Catalog (%d entries)", msg.snap.Len())
		m.entryList.SetSize(m.width-4, m.height-8)
		return m, nil

	case duplicatesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = CatalogView
			return m, nil
		}
		m.groups = msg.groups
		items := make([]list.Item, len(msg.groups))
		for i, group := range msg.groups {
			items[i] = duplicateItem{group: group}
		}
		m.dupeList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.dupeList.Title = fmt.Sprintf("Duplicated titles (%d)", len(msg.groups))
		m.dupeList.SetSize(m.width-4, m.height-8)
		m.view = DuplicatesView
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = CatalogView
			return m, nil
		}
		m.userCount = msg.users
		m.adminCount = msg.admins
		m.view = StatsView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case CatalogView:
		return m.renderCatalog()
	case DuplicatesView:
		return m.renderDuplicates()
	case StatsView:
		return m.renderStats()
	default:
		return ""
	}
}

func (m *Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The list's filter input swallows plain letters while active.
	if m.entryList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.entryList, cmd = m.entryList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "d":
		return m, m.loadDuplicates()
	case "s":
		return m, m.loadStats()
	case "r":
		return m, m.refreshCatalog()
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	return m, cmd
}

func (m *Model) handleDuplicatesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = CatalogView
		return m, nil
	}

	var cmd tea.Cmd
	m.dupeList, cmd = m.dupeList.Update(msg)
	return m, cmd
}

func (m *Model) handleStatsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = CatalogView
		return m, nil
	case "r":
		return m, m.refreshCatalog()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CatalogView:
		m.entryList, cmd = m.entryList.Update(msg)
	case DuplicatesView:
		m.dupeList, cmd = m.dupeList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.cache.Ensure(m.ctx)
		return catalogLoadedMsg{snap: snap, err: err}
	}
}

func (m *Model) refreshCatalog() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.cache.Refresh(m.ctx)
		return catalogLoadedMsg{snap: snap, err: err}
	}
}

func (m *Model) loadDuplicates() tea.Cmd {
	return func() tea.Msg {
		groups, err := m.detector.Find(m.ctx)
		return duplicatesLoadedMsg{groups: groups, err: err}
	}
}

func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		users, admins, err := m.users.Count(m.ctx)
		return statsLoadedMsg{users: users, admins: admins, err: err}
	}
}

func (m *Model) renderCatalog() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.duplicates, m.keys.stats, m.keys.refresh, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.entryList.View(), helpView)
}

func (m *Model) renderDuplicates() string {
	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.dupeList.View(), helpView)
}

func (m *Model) renderStats() string {
	title := styles.title.Render("Library Stats")

	refreshed := "never"
	entries := 0
	if m.snapshot != nil {
		refreshed = m.snapshot.RefreshedAt.Format(time.RFC3339)
		entries = m.snapshot.Len()
	}

	info := fmt.Sprintf(
		"\nCatalog entries: %d\nCache refreshed: %s\nUsers: %d (%d admins)\n",
		entries, refreshed, m.userCount, m.adminCount,
	)

	helpKeys := []key.Binding{m.keys.back, m.keys.refresh, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}
