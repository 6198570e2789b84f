package database

import (
    "context"

    "go.uber.org/zap"

    "github.com/zaqqye/restroom_monitor/internal/models"
    "github.com/zaqqye/restroom_monitor/internal/store"
)

// SeedDemoRoom creates one restroom with the default supplies when the store
// is empty, so a fresh install has something to show.
func SeedDemoRoom(ctx context.Context, st store.RoomStore, logger *zap.Logger) error {
    rooms, err := st.List(ctx)
    if err != nil {
        return err
    }
    if len(rooms) > 0 {
        return nil
    }
    room := &models.Room{
        Name:     "Main Restroom",
        Type:     "restroom",
        Location: "Ground Floor",
        Supplies: models.DefaultSupplies(),
    }
    if err := st.Create(ctx, room); err != nil {
        return err
    }
    logger.Info("seeded demo room", zap.String("room_id", room.ID))
    return nil
}
