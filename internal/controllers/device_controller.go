package controllers

import (
    "errors"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/restroom_monitor/internal/models"
    "github.com/zaqqye/restroom_monitor/internal/store"
    "github.com/zaqqye/restroom_monitor/internal/utils"
    "github.com/zaqqye/restroom_monitor/internal/ws"
)

// DeviceController serves the sensor units mounted in each room.
type DeviceController struct {
    Store  store.RoomStore
    Hub    *ws.Hub
    Logger *zap.Logger
}

type reportRequest struct {
    RoomID string `json:"room_id"`
    Item   string `json:"item"`
    Status string `json:"status"`
}

// Report records a supply level measured by a device. Unrecognised status
// strings are stored as sent.
func (dc *DeviceController) Report(c *gin.Context) {
    var req reportRequest
    // Malformed bodies fall through to the room_id check, like an empty report.
    _ = c.ShouldBindJSON(&req)

    roomID := utils.NormalizeRoomID(req.RoomID)
    if roomID == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room_id"})
        return
    }
    if _, err := dc.Store.Get(c.Request.Context(), roomID); err != nil {
        if errors.Is(err, store.ErrRoomNotFound) {
            c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room_id"})
            return
        }
        dc.Logger.Error("device report lookup failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    item := strings.TrimSpace(req.Item)
    if item == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "Item required"})
        return
    }
    status := models.SupplyStatus(strings.ToLower(strings.TrimSpace(req.Status)))
    if status == "" {
        status = "unknown"
    }

    room, err := dc.Store.SetSupplyStatus(c.Request.Context(), roomID, item, status)
    if err != nil {
        switch {
        case errors.Is(err, store.ErrSupplyNotFound):
            c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item"})
        case errors.Is(err, store.ErrRoomNotFound):
            c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room_id"})
        default:
            dc.Logger.Error("device report failed", zap.Error(err))
            c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        }
        return
    }
    if !status.Known() {
        dc.Logger.Warn("device reported unknown status", zap.String("room_id", roomID), zap.String("item", item), zap.String("status", string(status)))
    }
    dc.Logger.Info("supply reported", zap.String("room_id", roomID), zap.String("item", item), zap.String("status", string(status)))
    publishSupplyUpdate(dc.Hub, room, item, status)
    c.JSON(http.StatusOK, gin.H{"ok": true, "room": room.Name})
}

// RoomInfo lets a device confirm the room id it was configured with.
func (dc *DeviceController) RoomInfo(c *gin.Context) {
    id := utils.NormalizeRoomID(c.Param("id"))
    room, err := dc.Store.Get(c.Request.Context(), id)
    if err != nil {
        if errors.Is(err, store.ErrRoomNotFound) {
            c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, room)
}
