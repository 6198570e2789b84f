package dashboard

import (
	"strings"

	"github.com/zaqqye/restroom_monitor/internal/models"
)

const (
	EmptyPlaceholder = "No rooms yet. Add a room to start tracking its supplies."
	NoLocation       = "No location"
)

// View is everything a front end needs to draw one frame.
type View struct {
	// Empty is set when there are no rooms; Cards is then nil and
	// Placeholder should be shown instead of a grid.
	Empty       bool
	Placeholder string
	Cards       []RoomCard
}

type RoomCard struct {
	ID          string
	Name        string
	Summary     string
	Status      models.RoomStatus
	StatusClass string
	Supplies    []SupplyRow
}

type SupplyRow struct {
	Key    string
	Icon   string
	Name   string
	Status models.SupplyStatus
	Label  string
	// StatusClass is empty for statuses outside full/low/empty.
	StatusClass string
	// Resolvable is only set for empty supplies.
	Resolvable bool
}

// Render maps rooms to a View. It is pure: no I/O, no state.
func Render(rooms []models.Room) View {
	if len(rooms) == 0 {
		return View{Empty: true, Placeholder: EmptyPlaceholder}
	}
	cards := make([]RoomCard, 0, len(rooms))
	for _, r := range rooms {
		cards = append(cards, renderCard(r))
	}
	return View{Cards: cards}
}

func renderCard(r models.Room) RoomCard {
	supplies := models.EffectiveSupplies(r.Supplies)
	status := models.DeriveRoomStatus(supplies)

	rows := make([]SupplyRow, 0, len(supplies))
	for _, key := range models.SupplyKeys(supplies) {
		sup := supplies[key]
		row := SupplyRow{
			Key:        key,
			Icon:       models.IconFor(key),
			Name:       sup.Name,
			Status:     sup.Status,
			Label:      strings.ToUpper(string(sup.Status)),
			Resolvable: sup.Status == models.SupplyEmpty,
		}
		if sup.Status.Known() {
			row.StatusClass = "supply-" + string(sup.Status)
		}
		rows = append(rows, row)
	}

	return RoomCard{
		ID:          r.ID,
		Name:        r.Name,
		Summary:     summary(r),
		Status:      status,
		StatusClass: "status-" + string(status),
		Supplies:    rows,
	}
}

func summary(r models.Room) string {
	loc := strings.TrimSpace(r.Location)
	if loc == "" {
		loc = NoLocation
	}
	return r.Type + " • " + loc
}

// ResolveTargets lists the supply keys of card that offer a resolve action.
func (c RoomCard) ResolveTargets() []string {
	var keys []string
	for _, row := range c.Supplies {
		if row.Resolvable {
			keys = append(keys, row.Key)
		}
	}
	return keys
}

// Card finds the card for a room id.
func (v View) Card(id string) (RoomCard, bool) {
	for _, c := range v.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return RoomCard{}, false
}
