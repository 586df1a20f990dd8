// ABOUTME: Root AppModel for the Bubble Tea front-end over the shared catalogue App
// ABOUTME: Routes key and mouse messages through the App; View composes page plus mount point

package btea

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/cellar-go/internal/mode/interactive"
	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui/width"
)

var flashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// shared holds state that must survive AppModel value copies. Bubble Tea
// copies the model on each Update; pointer fields are shared across copies.
type shared struct {
	app     *interactive.App
	pending []overlay.Event
	cancel  func()
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sh *shared

	width, height int
	flash         string
	flashSeq      int
}

// NewAppModel builds the model and its App. Call Close when done.
func NewAppModel(deps interactive.Deps) AppModel {
	sh := &shared{app: interactive.NewApp(deps)}
	sh.cancel = sh.app.Events().Subscribe(func(ev overlay.Event) {
		sh.pending = append(sh.pending, ev)
	})
	return AppModel{sh: sh}
}

// App returns the underlying application.
func (m AppModel) App() *interactive.App {
	return m.sh.app
}

// Close releases the App.
func (m AppModel) Close() {
	m.sh.cancel()
	m.sh.app.Close()
}

// Init returns nil; the first WindowSizeMsg triggers the first frame.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the App.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sh.app.Resize(msg.Height)
		return m, nil

	case tea.KeyMsg:
		for _, name := range keyNames(msg) {
			if m.sh.app.HandleKey(name) {
				return m, tea.Quit
			}
		}
		return m.drainEvents()

	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok {
			m.sh.app.HandlePointer(ev)
		}
		return m.drainEvents()

	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil
	}
	return m, nil
}

// drainEvents turns surface close events collected during the last input
// into a status flash.
func (m AppModel) drainEvents() (tea.Model, tea.Cmd) {
	events := m.sh.pending
	m.sh.pending = nil

	var closed int
	var reason overlay.CloseReason
	for _, ev := range events {
		if ev.Kind == overlay.EventClosed {
			closed++
			reason = ev.Reason
		}
	}
	if closed == 0 {
		return m, nil
	}
	m.flash = fmt.Sprintf("closed %d surface(s) · %s", closed, reason)
	if open := m.sh.app.Controller().Len(); open > 0 {
		m.flash += fmt.Sprintf(" · %d open", open)
	}
	m.flashSeq++
	seq := m.flashSeq
	return m, tea.Tick(flashTTL, func(time.Time) tea.Msg { return flashExpiredMsg{seq: seq} })
}

// View renders the page with every open surface composited on top. A
// pending flash replaces the bottom line.
func (m AppModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	lines := m.sh.app.Screen(m.width, m.height)
	if m.flash != "" && len(lines) > 0 {
		lines[len(lines)-1] = flashStyle.Render(width.Truncate(m.flash, m.width))
	}
	return strings.Join(lines, "\n")
}
