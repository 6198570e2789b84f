package ws

import (
	"encoding/json"
	"fmt"

	"github.com/zaqqye/restroom_monitor/internal/models"
)

// EventKind names a change notification pushed to dashboards.
type EventKind int

const (
	EventUnknown EventKind = iota
	// EventRoomUpdate: a room was created, edited or deleted.
	EventRoomUpdate
	// EventSupplyUpdate: one supply's status changed.
	EventSupplyUpdate
)

const (
	roomUpdateName   = "room_update"
	supplyUpdateName = "supply_update"
)

func ParseEventKind(name string) EventKind {
	switch name {
	case roomUpdateName:
		return EventRoomUpdate
	case supplyUpdateName:
		return EventSupplyUpdate
	}
	return EventUnknown
}

func (k EventKind) String() string {
	switch k {
	case EventRoomUpdate:
		return roomUpdateName
	case EventSupplyUpdate:
		return supplyUpdateName
	}
	return "unknown"
}

// Event is one frame on the push channel: {"type": "...", "data": {...}}.
// Name keeps the raw type string so unknown kinds can still be logged.
type Event struct {
	Kind EventKind
	Name string
	Data json.RawMessage
}

type frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	name := e.Name
	if name == "" {
		name = e.Kind.String()
	}
	return json.Marshal(frame{Type: name, Data: e.Data})
}

func (e *Event) UnmarshalJSON(data []byte) error {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("ws: decode event: %w", err)
	}
	e.Name = f.Type
	e.Kind = ParseEventKind(f.Type)
	e.Data = f.Data
	return nil
}

// RoomUpdate is the payload of a room_update event. Deleted is set instead of
// Room when the room is gone.
type RoomUpdate struct {
	Room    *models.Room `json:"room,omitempty"`
	Deleted string       `json:"deleted,omitempty"`
}

// SupplyUpdate is the payload of a supply_update event.
type SupplyUpdate struct {
	RoomID   string `json:"room_id"`
	RoomName string `json:"room_name"`
	Item     string `json:"item"`
	Status   string `json:"status"`
}
