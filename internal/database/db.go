package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/zaqqye/restroom_monitor/internal/config"
    "github.com/zaqqye/restroom_monitor/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
    dsn := fmt.Sprintf(
        "host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
        cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
    )
    return gorm.Open(postgres.Open(dsn), &gorm.Config{
        Logger: gormlogger.Default.LogMode(gormlogger.Warn),
    })
}

func Migrate(db *gorm.DB) error {
    return db.AutoMigrate(&models.Room{})
}
