package routes

import (
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/restroom_monitor/internal/controllers"
    "github.com/zaqqye/restroom_monitor/internal/store"
    "github.com/zaqqye/restroom_monitor/internal/ws"
)

func Register(r *gin.Engine, st store.RoomStore, hub *ws.Hub, logger *zap.Logger) {
    roomCtrl := &controllers.RoomController{Store: st, Hub: hub, Logger: logger}
    deviceCtrl := &controllers.DeviceController{Store: st, Hub: hub, Logger: logger}

    api := r.Group("/api")
    {
        api.GET("/rooms", roomCtrl.ListRooms)
        api.POST("/rooms", roomCtrl.CreateRoom)
        api.GET("/rooms/:id", roomCtrl.GetRoom)
        api.PUT("/rooms/:id", roomCtrl.UpdateRoom)
        api.DELETE("/rooms/:id", roomCtrl.DeleteRoom)
        api.POST("/rooms/:id/supply/:key/resolve", roomCtrl.ResolveSupply)
    }

    // Sensor devices
    r.POST("/report", deviceCtrl.Report)
    r.GET("/room/:id", deviceCtrl.RoomInfo)

    // Push channel
    r.GET("/ws", ws.Handler(hub))
}
