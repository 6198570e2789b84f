package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaqqye/restroom_monitor/internal/client"
	"github.com/zaqqye/restroom_monitor/internal/dashboard"
	"github.com/zaqqye/restroom_monitor/internal/models"
)

// stubAPI keeps rooms in memory; enough to drive the model end to end.
type stubAPI struct {
	mu    sync.Mutex
	rooms []models.Room
}

func (s *stubAPI) ListRooms(context.Context) ([]models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Room, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = r.Clone()
	}
	return out, nil
}

func (s *stubAPI) CreateRoom(_ context.Context, in client.RoomInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, models.Room{ID: "NEW", Name: in.Name, Type: in.Type, Location: in.Location})
	return nil
}

func (s *stubAPI) UpdateRoom(context.Context, string, client.RoomInput) error { return nil }

func (s *stubAPI) DeleteRoom(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			break
		}
	}
	return nil
}

func (s *stubAPI) ResolveSupply(_ context.Context, roomID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			s.rooms[i].Supplies[key] = models.Supply{Name: s.rooms[i].Supplies[key].Name, Status: models.SupplyFull}
		}
	}
	return nil
}

// helper to send a message through Update and return the updated Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// runCmd executes cmd and feeds its message back, then applies the latest view.
func runCmd(t *testing.T, m Model, cmd tea.Cmd, views *[]dashboard.View) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = tuiUpdate(m, cmd())
	if len(*views) > 0 {
		m, _ = tuiUpdate(m, ViewMsg{View: (*views)[len(*views)-1]})
	}
	return m
}

func newTestModel(t *testing.T, rooms ...models.Room) (Model, *[]dashboard.View) {
	t.Helper()
	views := &[]dashboard.View{}
	dash := dashboard.New(&stubAPI{rooms: rooms}, nil, func(v dashboard.View) { *views = append(*views, v) }, zap.NewNop())
	dash.Refresh(context.Background())
	m := New(context.Background(), dash)
	m, _ = tuiUpdate(m, ViewMsg{View: dash.View()})
	return m, views
}

func TestView_EmptyPlaceholder(t *testing.T) {
	m, _ := newTestModel(t)
	require.Contains(t, m.View(), dashboard.EmptyPlaceholder)
}

func TestAddRoomFlow(t *testing.T) {
	m, views := newTestModel(t)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.Equal(t, modeAdd, m.mode)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Lobby")})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("restroom")})
	m, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.busy)

	m = runCmd(t, m, cmd, views)
	require.False(t, m.busy)
	require.Equal(t, modeBrowse, m.mode)
	require.Len(t, m.view.Cards, 1)
	require.Contains(t, m.View(), "Lobby")
}

func TestResolveSelectedSupply(t *testing.T) {
	room := models.Room{ID: "R1", Name: "Lobby", Type: "restroom", Supplies: models.Supplies{
		"toilet_paper": {Name: "Toilet Paper", Status: models.SupplyEmpty},
		"soap":         {Name: "Soap", Status: models.SupplyFull},
	}}
	m, views := newTestModel(t, room)
	require.Contains(t, m.View(), "[resolve]")

	// soap is full: nothing to resolve
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRight})
	_, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.Nil(t, cmd)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = runCmd(t, m, cmd, views)
	require.Empty(t, m.view.Cards[0].ResolveTargets())
	require.NotContains(t, m.View(), "[resolve]")
}

func TestDeleteFromEditForm(t *testing.T) {
	m, views := newTestModel(t, models.Room{ID: "R1", Name: "Lobby", Type: "restroom"})

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	require.Equal(t, modeEdit, m.mode)
	require.Equal(t, "Lobby", m.inputs[0].Value())

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, modeConfirmDelete, m.mode)
	require.True(t, strings.Contains(m.View(), "cannot be undone"))

	// anything but y backs out
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	require.Equal(t, modeEdit, m.mode)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	m, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m = runCmd(t, m, cmd, views)
	require.Equal(t, modeBrowse, m.mode)
	require.True(t, m.view.Empty)
}

func TestNoticeBlocksUntilKeyPress(t *testing.T) {
	m, _ := newTestModel(t, models.Room{ID: "R1", Name: "Lobby", Type: "restroom"})
	m, _ = tuiUpdate(m, NotifyMsg{Text: "Failed to create room."})
	require.Contains(t, m.View(), "Failed to create room.")

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.Equal(t, modeBrowse, m.mode)
	require.Empty(t, m.notice)
}

func TestEscClearsAddForm(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Kit")})
	require.Equal(t, "Kit", m.inputs[0].Value())
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, modeBrowse, m.mode)

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.Equal(t, modeAdd, m.mode)
	require.Empty(t, m.inputs[0].Value())
}
