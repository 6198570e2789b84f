package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zaqqye/restroom_monitor/internal/models"
)

// GormStore keeps rooms in a SQL table; supplies live in a JSON column.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) List(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (models.Room, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&room).Error; err != nil {
		return models.Room{}, translate(err)
	}
	return room, nil
}

func (s *GormStore) Create(ctx context.Context, room *models.Room) error {
	return s.DB.WithContext(ctx).Create(room).Error
}

func (s *GormStore) Update(ctx context.Context, id string, patch RoomPatch) (models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&room).Error; err != nil {
			return err
		}
		patch.apply(&room)
		// Omit supplies so a concurrent resolve is never clobbered.
		return tx.Model(&room).Select("name", "type", "location").Updates(map[string]any{
			"name":     room.Name,
			"type":     room.Type,
			"location": room.Location,
		}).Error
	})
	if err != nil {
		return models.Room{}, translate(err)
	}
	return room, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) (models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&room).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Room{}).Error
	})
	if err != nil {
		return models.Room{}, translate(err)
	}
	return room, nil
}

func (s *GormStore) SetSupplyStatus(ctx context.Context, id, key string, status models.SupplyStatus) (models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&room).Error; err != nil {
			return err
		}
		sup, ok := room.Supplies[key]
		if !ok {
			return ErrSupplyNotFound
		}
		sup.Status = status
		room.Supplies[key] = sup
		return tx.Model(&room).Select("supplies").Updates(models.Room{Supplies: room.Supplies}).Error
	})
	if err != nil {
		return models.Room{}, translate(err)
	}
	return room, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomNotFound
	}
	return err
}
