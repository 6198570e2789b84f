package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zaqqye/restroom_monitor/internal/models"
)

func TestRender_EmptyState(t *testing.T) {
	v := Render(nil)
	require.True(t, v.Empty)
	require.Equal(t, EmptyPlaceholder, v.Placeholder)
	require.Nil(t, v.Cards)

	require.True(t, Render([]models.Room{}).Empty)
}

func TestRender_AlertRoom(t *testing.T) {
	v := Render([]models.Room{lobby()})
	require.False(t, v.Empty)
	require.Len(t, v.Cards, 1)

	card := v.Cards[0]
	require.Equal(t, "r1", card.ID)
	require.Equal(t, "Lobby", card.Name)
	require.Equal(t, "restroom • 1F", card.Summary)
	require.Equal(t, models.RoomAlert, card.Status)
	require.Equal(t, "status-alert", card.StatusClass)
	require.Equal(t, []string{"toilet_paper"}, card.ResolveTargets())

	require.Len(t, card.Supplies, 2)
	tp := card.Supplies[0]
	require.Equal(t, "toilet_paper", tp.Key)
	require.Equal(t, "EMPTY", tp.Label)
	require.Equal(t, "supply-empty", tp.StatusClass)
	require.Equal(t, models.IconFor("toilet_paper"), tp.Icon)
	require.False(t, card.Supplies[1].Resolvable)
}

func TestRender_MissingSuppliesMatchesDefaults(t *testing.T) {
	bare := models.Room{ID: "r2", Name: "Break", Type: "breakroom"}
	withDefaults := bare
	withDefaults.Supplies = models.DefaultSupplies()

	a := Render([]models.Room{bare})
	b := Render([]models.Room{withDefaults})
	require.Equal(t, b, a)
	require.Equal(t, models.RoomOK, a.Cards[0].Status)
	require.Equal(t, "breakroom • No location", a.Cards[0].Summary)
	require.Len(t, a.Cards[0].Supplies, 4)
}

func TestRender_WarningAndUnknownStatus(t *testing.T) {
	room := models.Room{ID: "r3", Name: "Kitchen", Type: "breakroom", Supplies: models.Supplies{
		"soap":    {Name: "Soap", Status: models.SupplyLow},
		"sponges": {Name: "Sponges", Status: "sensor_error"},
	}}
	card := Render([]models.Room{room}).Cards[0]
	require.Equal(t, "status-warning", card.StatusClass)
	require.Empty(t, card.ResolveTargets())

	unknown := card.Supplies[1]
	require.Equal(t, "sponges", unknown.Key)
	require.Equal(t, "SENSOR_ERROR", unknown.Label)
	require.Empty(t, unknown.StatusClass)
	require.Equal(t, models.IconFor("nope"), unknown.Icon)
}

func TestRender_KeepsRoomOrder(t *testing.T) {
	rooms := []models.Room{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}}
	v := Render(rooms)
	require.Equal(t, "b", v.Cards[0].ID)
	require.Equal(t, "a", v.Cards[1].ID)

	card, ok := v.Card("a")
	require.True(t, ok)
	require.Equal(t, "A", card.Name)
	_, ok = v.Card("zzz")
	require.False(t, ok)
}
