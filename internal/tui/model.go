// Package tui implements the interactive transaction browser. It renders
// the filtered projection of the ledger, and is the surface where the
// undo-delete window is actually exercised: deletes apply immediately, the
// banner offers undo until the window expires.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yuhsinc/pocket-ledger/internal/common"
	"github.com/yuhsinc/pocket-ledger/internal/ledger"
	"github.com/yuhsinc/pocket-ledger/internal/model"
	"github.com/yuhsinc/pocket-ledger/internal/service"
	"github.com/yuhsinc/pocket-ledger/internal/undo"
)

// Config wires the browser to the stores.
type Config struct {
	Ledger  *ledger.Store
	Undo    *undo.Coordinator
	Storage service.Storage // nil disables persistence write-back
}

// tickMsg drives banner refreshes while an undo window is open.
type tickMsg time.Time

// Model holds the browser state.
type Model struct {
	cfg      Config
	keymap   KeyMap
	search   textinput.Model
	filter   ledger.ModeFilter
	cursor   int
	width    int
	height   int
	typing   bool
	quitting bool
}

// newModel creates a browser over the given stores.
func newModel(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "搜尋備註或類別"
	search.CharLimit = 40
	search.Width = 24

	return Model{
		cfg:    cfg,
		keymap: DefaultKeyMap(),
		search: search,
		filter: ledger.FilterAll,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, tick())
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// visible returns the current filtered projection in canonical order.
func (m Model) visible() []model.Transaction {
	return ledger.Filter(m.cfg.Ledger.Transactions(), m.filter, m.search.Value())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The undo banner hides itself when the window expires; a
		// steady tick is enough to repaint without extra plumbing.
		return m, tick()

	case tea.KeyMsg:
		if m.typing {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.typing = false
		m.search.Blur()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.cfg.Undo.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Filter):
		m.filter = nextFilter(m.filter)
		m.cursor = 0

	case key.Matches(msg, m.keymap.Search):
		m.typing = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keymap.Delete):
		m.deleteSelected()

	case key.Matches(msg, m.keymap.Undo):
		m.undoDelete()
	}

	return m, nil
}

// deleteSelected removes the transaction under the cursor through the undo
// coordinator and propagates the delete to the backend right away. The
// deletion stays reversible locally for the undo window.
func (m *Model) deleteSelected() {
	rows := m.visible()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return
	}
	tx := rows[m.cursor]

	m.cfg.Undo.OnDelete(tx)
	if m.cursor >= len(rows)-1 && m.cursor > 0 {
		m.cursor--
	}

	if m.cfg.Storage != nil {
		if err := m.cfg.Storage.DeleteTransaction(context.Background(), tx.ID); err != nil {
			common.LogError(err, "failed to delete transaction", common.Fields{"id": tx.ID})
		}
	}
}

// undoDelete restores the pending deletion, if the window is still open,
// and re-saves it to the backend.
func (m *Model) undoDelete() {
	tx, ok := m.cfg.Undo.OnUndo()
	if !ok {
		return
	}

	if m.cfg.Storage != nil {
		if err := m.cfg.Storage.SaveTransaction(context.Background(), tx); err != nil {
			common.LogError(err, "failed to restore transaction", common.Fields{"id": tx.ID})
		}
	}
}

func nextFilter(f ledger.ModeFilter) ledger.ModeFilter {
	switch f {
	case ledger.FilterAll:
		return ledger.FilterExpense
	case ledger.FilterExpense:
		return ledger.FilterIncome
	default:
		return ledger.FilterAll
	}
}
