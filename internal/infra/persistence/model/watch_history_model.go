package model

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistoryModel mirrors the 'watch_history' table.
type WatchHistoryModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	WatchedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
