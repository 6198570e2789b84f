package models

import (
    "gorm.io/gorm"

    "github.com/zaqqye/restroom_monitor/internal/utils"
)

// Room is both the persisted row and the JSON shape served by /api/rooms.
type Room struct {
    ID        string    `gorm:"primaryKey;size:16" json:"id"`
    Name      string    `gorm:"not null" json:"name"`
    Type      string    `gorm:"not null;default:restroom" json:"type"`
    Location  string    `json:"location"`
    Supplies  Supplies  `gorm:"serializer:json" json:"supplies,omitempty"`
    CreatedAt Timestamp `gorm:"index;type:timestamptz" json:"created_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) (err error) {
    if r.ID == "" {
        r.ID = utils.NewRoomID()
    }
    if r.CreatedAt.IsZero() {
        r.CreatedAt = Now()
    }
    return nil
}

// Status derives the room's aggregate status from its effective supplies.
func (r Room) Status() RoomStatus {
    return DeriveRoomStatus(EffectiveSupplies(r.Supplies))
}

// Clone returns a deep copy so snapshots never share supply maps.
func (r Room) Clone() Room {
    out := r
    if r.Supplies != nil {
        out.Supplies = make(Supplies, len(r.Supplies))
        for k, v := range r.Supplies {
            out.Supplies[k] = v
        }
    }
    return out
}
