// Package tui draws the dashboard View in a terminal and turns key presses
// into dashboard actions.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zaqqye/restroom_monitor/internal/dashboard"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

// ViewMsg carries a freshly rendered View into the update loop.
type ViewMsg struct{ View dashboard.View }

// NotifyMsg is a blocking message for the user.
type NotifyMsg struct{ Text string }

type mutationDoneMsg struct {
	from mode
	err  error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	ctx    context.Context
	dash   *dashboard.Dashboard
	view   dashboard.View
	mode   mode
	room   int
	supply int
	inputs []textinput.Model
	focus  int
	notice string
	busy   bool
	width  int
}

func New(ctx context.Context, dash *dashboard.Dashboard) Model {
	inputs := make([]textinput.Model, 3)
	for i, ph := range []string{"Name", "Type (restroom, breakroom...)", "Location (optional)"} {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 64
		inputs[i] = ti
	}
	return Model{ctx: ctx, dash: dash, view: dash.View(), inputs: inputs}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		m.dash.Refresh(m.ctx)
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case ViewMsg:
		m.view = msg.View
		m.clampCursor()
		return m, nil
	case NotifyMsg:
		m.notice = msg.Text
		return m, nil
	case mutationDoneMsg:
		m.busy = false
		switch {
		case msg.err == nil:
			m.mode = modeBrowse
		case errors.Is(msg.err, dashboard.ErrDeleteCancelled), msg.from == modeConfirmDelete:
			m.mode = modeEdit
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		// A notice blocks everything until acknowledged.
		if m.notice != "" {
			m.notice = ""
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.room > 0 {
			m.room--
			m.supply = 0
		}
	case "down", "j":
		if m.room < len(m.view.Cards)-1 {
			m.room++
			m.supply = 0
		}
	case "left", "h":
		if m.supply > 0 {
			m.supply--
		}
	case "right", "l":
		if card, ok := m.selectedCard(); ok && m.supply < len(card.Supplies)-1 {
			m.supply++
		}
	case "a":
		m.dash.OpenAdd()
		form := m.dash.AddForm()
		m.loadInputs(form.Name, form.Type, form.Location)
		m.mode = modeAdd
	case "e", "enter":
		card, ok := m.selectedCard()
		if !ok || !m.dash.OpenEdit(card.ID) {
			return m, nil
		}
		form := m.dash.EditForm()
		m.loadInputs(form.Name, form.Type, form.Location)
		m.mode = modeEdit
	case "r":
		card, ok := m.selectedCard()
		if !ok || m.supply >= len(card.Supplies) || !card.Supplies[m.supply].Resolvable {
			return m, nil
		}
		roomID, key := card.ID, card.Supplies[m.supply].Key
		m.busy = true
		return m, m.run(modeBrowse, func(ctx context.Context) error {
			return m.dash.Resolve(ctx, roomID, key)
		})
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		if m.mode == modeAdd {
			m.dash.DismissAdd()
		} else {
			m.dash.DismissEdit()
		}
		m.mode = modeBrowse
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case tea.KeyCtrlD:
		if m.mode == modeEdit {
			m.mode = modeConfirmDelete
		}
		return m, nil
	case tea.KeyEnter:
		name, typ, loc := m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value()
		from := m.mode
		m.busy = true
		if from == modeAdd {
			m.dash.FillAdd(name, typ, loc)
			return m, m.run(from, m.dash.SubmitAdd)
		}
		m.dash.FillEdit(name, typ, loc)
		return m, m.run(from, m.dash.SubmitEdit)
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.busy = true
		return m, m.run(modeConfirmDelete, func(ctx context.Context) error {
			// The user has just answered the prompt drawn by View.
			return m.dash.DeleteEditing(ctx, func(string) bool { return true })
		})
	default:
		m.mode = modeEdit
	}
	return m, nil
}

func (m Model) run(from mode, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return mutationDoneMsg{from: from, err: fn(ctx)}
	}
}

func (m *Model) loadInputs(values ...string) {
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
	}
	m.setFocus(0)
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m Model) selectedCard() (dashboard.RoomCard, bool) {
	if m.room < 0 || m.room >= len(m.view.Cards) {
		return dashboard.RoomCard{}, false
	}
	return m.view.Cards[m.room], true
}

func (m *Model) clampCursor() {
	if m.room >= len(m.view.Cards) {
		m.room = len(m.view.Cards) - 1
	}
	if m.room < 0 {
		m.room = 0
	}
	if card, ok := m.selectedCard(); ok && m.supply >= len(card.Supplies) {
		m.supply = 0
	}
}
