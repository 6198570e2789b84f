package controllers

import (
    "github.com/zaqqye/restroom_monitor/internal/models"
    "github.com/zaqqye/restroom_monitor/internal/ws"
)

func publishRoomUpdate(hub *ws.Hub, room *models.Room, deletedID string) {
    if hub == nil {
        return
    }
    hub.Publish(ws.EventRoomUpdate, ws.RoomUpdate{Room: room, Deleted: deletedID})
}

func publishSupplyUpdate(hub *ws.Hub, room models.Room, item string, status models.SupplyStatus) {
    if hub == nil {
        return
    }
    hub.Publish(ws.EventSupplyUpdate, ws.SupplyUpdate{
        RoomID:   room.ID,
        RoomName: room.Name,
        Item:     item,
        Status:   string(status),
    })
}
