package database

import (
    "context"
    "testing"

    "github.com/stretchr/testify/require"
    "go.uber.org/zap"

    "github.com/zaqqye/restroom_monitor/internal/models"
    "github.com/zaqqye/restroom_monitor/internal/store"
)

func TestSeedDemoRoom_OnlyWhenEmpty(t *testing.T) {
    st, err := store.NewMemoryStore("", zap.NewNop())
    require.NoError(t, err)

    require.NoError(t, SeedDemoRoom(context.Background(), st, zap.NewNop()))
    require.NoError(t, SeedDemoRoom(context.Background(), st, zap.NewNop()))

    rooms, err := st.List(context.Background())
    require.NoError(t, err)
    require.Len(t, rooms, 1)
    require.Equal(t, models.RoomOK, rooms[0].Status())
}
