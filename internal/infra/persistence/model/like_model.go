package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. The target is stored as a (kind, id) pair.
type LikeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LikedBy    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_owner_target"`
	TargetKind string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_likes_owner_target;index:idx_likes_target"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_owner_target;index:idx_likes_target"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// TargetCount is the row shape of a grouped count keyed by a UUID column.
type TargetCount struct {
	TargetID uuid.UUID
	Total    int64
}
