package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zaqqye/restroom_monitor/internal/dashboard"
	"github.com/zaqqye/restroom_monitor/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(44)
	modalStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2)

	roomColors = map[models.RoomStatus]lipgloss.Color{
		models.RoomOK:      lipgloss.Color("10"),
		models.RoomWarning: lipgloss.Color("11"),
		models.RoomAlert:   lipgloss.Color("9"),
	}
	supplyStyles = map[string]lipgloss.Style{
		"supply-full":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"supply-low":   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"supply-empty": lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Smart Restroom Supplies"))
	b.WriteString("\n\n")

	switch {
	case m.notice != "":
		b.WriteString(modalStyle.Render(m.notice + "\n\n" + helpStyle.Render("press any key")))
	case m.mode == modeAdd:
		b.WriteString(m.formView("Add room", ""))
	case m.mode == modeEdit:
		b.WriteString(m.formView("Edit room", m.dash.EditForm().ID))
	case m.mode == modeConfirmDelete:
		form := m.dash.EditForm()
		b.WriteString(modalStyle.Render(fmt.Sprintf("Delete room %q? This cannot be undone.\n\n%s", form.Name, helpStyle.Render("y: delete • any other key: cancel"))))
	default:
		b.WriteString(m.gridView())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ room • ←/→ supply • r resolve • e edit • a add • q quit"))
	}
	if m.busy {
		b.WriteString("\n" + helpStyle.Render("working..."))
	}
	return b.String()
}

func (m Model) gridView() string {
	if m.view.Empty {
		return modalStyle.Render(m.view.Placeholder)
	}
	cards := make([]string, 0, len(m.view.Cards))
	for i, card := range m.view.Cards {
		cards = append(cards, m.cardView(card, i == m.room))
	}
	perRow := 1
	if m.width > 0 {
		perRow = max(1, m.width/48)
	}
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) cardView(card dashboard.RoomCard, selected bool) string {
	var b strings.Builder
	name := lipgloss.NewStyle().Bold(true).Render(card.Name)
	fmt.Fprintf(&b, "%s  %s\n", name, helpStyle.Render(card.ID))
	b.WriteString(helpStyle.Render(card.Summary))
	for i, row := range card.Supplies {
		label := row.Label
		if st, ok := supplyStyles[row.StatusClass]; ok {
			label = st.Render(label)
		}
		line := fmt.Sprintf("%s %-14s %s", row.Icon, row.Name, label)
		if row.Resolvable {
			line += "  [resolve]"
		}
		if selected && i == m.supply {
			line = cursorStyle.Render(line)
		}
		b.WriteString("\n" + line)
	}
	style := cardStyle.BorderForeground(roomColors[card.Status])
	if selected {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(b.String())
}

func (m Model) formView(title, id string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	if id != "" {
		b.WriteString("ID: " + id + "\n")
	}
	for _, in := range m.inputs {
		b.WriteString(in.View() + "\n")
	}
	help := "tab: next field • enter: save • esc: close"
	if id != "" {
		help += " • ctrl+d: delete"
	}
	b.WriteString("\n" + helpStyle.Render(help))
	return modalStyle.Render(b.String())
}
