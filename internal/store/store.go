// Package store persists rooms and their supply levels.
package store

import (
	"context"
	"errors"

	"github.com/zaqqye/restroom_monitor/internal/models"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrSupplyNotFound = errors.New("supply not found")
)

// RoomPatch carries the editable room fields. Nil fields keep their value;
// supplies are never part of a patch.
type RoomPatch struct {
	Name     *string
	Type     *string
	Location *string
}

func (p RoomPatch) apply(r *models.Room) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
}

type RoomStore interface {
	// List returns every room ordered by creation time.
	List(ctx context.Context) ([]models.Room, error)
	Get(ctx context.Context, id string) (models.Room, error)
	// Create assigns ID and CreatedAt when unset.
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, id string, patch RoomPatch) (models.Room, error)
	Delete(ctx context.Context, id string) (models.Room, error)
	SetSupplyStatus(ctx context.Context, id, key string, status models.SupplyStatus) (models.Room, error)
}
