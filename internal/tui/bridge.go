package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zaqqye/restroom_monitor/internal/dashboard"
)

// Bridge forwards renders and notifications from the dashboard into a running
// program. Calls before Attach are dropped.
type Bridge struct {
	p *tea.Program
}

func (b *Bridge) Attach(p *tea.Program) { b.p = p }

func (b *Bridge) Render(v dashboard.View) {
	if b.p != nil {
		b.p.Send(ViewMsg{View: v})
	}
}

func (b *Bridge) Notify(text string) {
	if b.p != nil {
		b.p.Send(NotifyMsg{Text: text})
	}
}
