package controllers

import (
    "errors"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/restroom_monitor/internal/models"
    "github.com/zaqqye/restroom_monitor/internal/store"
    "github.com/zaqqye/restroom_monitor/internal/ws"
)

type RoomController struct {
    Store  store.RoomStore
    Hub    *ws.Hub
    Logger *zap.Logger
}

type createRoomRequest struct {
    Name     string          `json:"name"`
    Type     string          `json:"type"`
    Location string          `json:"location"`
    Supplies models.Supplies `json:"supplies"`
}

// Supplies are deliberately absent: they only change through resolve or a
// device report.
type updateRoomRequest struct {
    Name     *string `json:"name"`
    Type     *string `json:"type"`
    Location *string `json:"location"`
}

func (rc *RoomController) ListRooms(c *gin.Context) {
    rooms, err := rc.Store.List(c.Request.Context())
    if err != nil {
        rc.Logger.Error("list rooms failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, rooms)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
    var req createRoomRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    room := models.Room{
        Name:     strings.TrimSpace(req.Name),
        Type:     strings.TrimSpace(req.Type),
        Location: strings.TrimSpace(req.Location),
        Supplies: req.Supplies,
    }
    if room.Name == "" {
        room.Name = "Unnamed Room"
    }
    if room.Type == "" {
        room.Type = "restroom"
    }
    if len(room.Supplies) == 0 {
        room.Supplies = models.DefaultSupplies()
    }
    if err := rc.Store.Create(c.Request.Context(), &room); err != nil {
        rc.Logger.Error("create room failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    rc.Logger.Info("room created", zap.String("room_id", room.ID), zap.String("name", room.Name))
    publishRoomUpdate(rc.Hub, &room, "")
    c.JSON(http.StatusCreated, room)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    room, err := rc.Store.Get(c.Request.Context(), id)
    if err != nil {
        rc.respondStoreError(c, err)
        return
    }
    c.JSON(http.StatusOK, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    var req updateRoomRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    room, err := rc.Store.Update(c.Request.Context(), id, store.RoomPatch{
        Name:     req.Name,
        Type:     req.Type,
        Location: req.Location,
    })
    if err != nil {
        rc.respondStoreError(c, err)
        return
    }
    rc.Logger.Info("room updated", zap.String("room_id", id))
    publishRoomUpdate(rc.Hub, &room, "")
    c.JSON(http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    deleted, err := rc.Store.Delete(c.Request.Context(), id)
    if err != nil {
        rc.respondStoreError(c, err)
        return
    }
    rc.Logger.Info("room deleted", zap.String("room_id", id))
    publishRoomUpdate(rc.Hub, nil, id)
    c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}

// ResolveSupply marks one supply full. Resolving a full supply succeeds.
func (rc *RoomController) ResolveSupply(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    key := strings.TrimSpace(c.Param("key"))
    room, err := rc.Store.SetSupplyStatus(c.Request.Context(), id, key, models.SupplyFull)
    if err != nil {
        switch {
        case errors.Is(err, store.ErrRoomNotFound):
            c.JSON(http.StatusNotFound, gin.H{"error": "Room not found", "room_id": id})
        case errors.Is(err, store.ErrSupplyNotFound):
            c.JSON(http.StatusNotFound, gin.H{"error": "Supply not found", "supply_key": key})
        default:
            rc.respondStoreError(c, err)
        }
        return
    }
    rc.Logger.Info("supply resolved", zap.String("room_id", id), zap.String("item", key))
    publishSupplyUpdate(rc.Hub, room, key, models.SupplyFull)
    c.JSON(http.StatusOK, gin.H{"success": true})
}

func (rc *RoomController) respondStoreError(c *gin.Context, err error) {
    if errors.Is(err, store.ErrRoomNotFound) {
        c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
        return
    }
    rc.Logger.Error("room store failure", zap.String("path", c.FullPath()), zap.Error(err))
    c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
