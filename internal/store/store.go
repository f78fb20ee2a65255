package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"energy-dashboard-backend/internal/model"
)

// Store defines the interface for all device registry operations.
type Store interface {
	DB() *gorm.DB
	ListDevices(ctx context.Context) ([]model.Device, error)
	GetDevice(ctx context.Context, id string) (model.Device, error)
	CreateDevice(ctx context.Context, device model.Device) error
	UpdateDevice(ctx context.Context, id string, patch model.DevicePatch) error
	DeleteDevice(ctx context.Context, id string) error
	ReplaceAllDevices(ctx context.Context, devices []model.Device) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying connection for process wiring and tests.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func withLogs(db *gorm.DB) *gorm.DB {
	// Seq 0 is the most recent day; keep that ordering stable under SQL.
	return db.Preload("UsageLogs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("seq ASC")
	})
}

// ListDevices returns every device with its usage history, in insertion
// order.
func (s *gormStore) ListDevices(ctx context.Context) ([]model.Device, error) {
	var devices []model.Device
	if err := withLogs(s.db.WithContext(ctx)).Order("rowid").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

// GetDevice returns a single device by id, or model.ErrNotFound.
func (s *gormStore) GetDevice(ctx context.Context, id string) (model.Device, error) {
	var device model.Device
	err := withLogs(s.db.WithContext(ctx)).First(&device, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Device{}, model.ErrNotFound
	}
	if err != nil {
		return model.Device{}, fmt.Errorf("failed to fetch device %s: %w", id, err)
	}
	return device, nil
}

// CreateDevice inserts a device together with its usage logs.
func (s *gormStore) CreateDevice(ctx context.Context, device model.Device) error {
	if err := s.db.WithContext(ctx).Create(&device).Error; err != nil {
		return fmt.Errorf("failed to create device %s: %w", device.ID, err)
	}
	return nil
}

// UpdateDevice merges the non-nil patch fields into an existing device.
// An empty patch leaves the device untouched but still reports an unknown id.
func (s *gormStore) UpdateDevice(ctx context.Context, id string, patch model.DevicePatch) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var device model.Device
		if err := tx.First(&device, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrNotFound
			}
			return fmt.Errorf("failed to fetch device %s: %w", id, err)
		}

		updates := make(map[string]any)
		if patch.Name != nil {
			updates["name"] = *patch.Name
		}
		if patch.Icon != nil {
			updates["icon"] = *patch.Icon
		}
		if patch.WattsPerHour != nil {
			updates["watts_per_hour"] = *patch.WattsPerHour
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&device).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update device %s: %w", id, err)
		}
		return nil
	})
}

// DeleteDevice removes a device and its usage logs.
func (s *gormStore) DeleteDevice(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.UsageLog{}, "device_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete usage logs for device %s: %w", id, err)
		}

		res := tx.Delete(&model.Device{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete device %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return nil
	})
}

// ReplaceAllDevices swaps the full device collection, used when seeding.
func (s *gormStore) ReplaceAllDevices(ctx context.Context, devices []model.Device) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.UsageLog{}).Error; err != nil {
			return fmt.Errorf("failed to clear usage logs: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.Device{}).Error; err != nil {
			return fmt.Errorf("failed to clear devices: %w", err)
		}
		for i := range devices {
			if err := tx.Create(&devices[i]).Error; err != nil {
				return fmt.Errorf("failed to seed device %s: %w", devices[i].ID, err)
			}
		}
		return nil
	})
}
