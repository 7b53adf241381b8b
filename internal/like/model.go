package like

import (
	"time"

	"poetry/internal/poem"

	"gorm.io/gorm"
)

// Like rows live in two uniqueness domains: (poem_id, user_id) when user_id is
// set, (poem_id, user_ip) when it is null. See db.AutoMigrateAndIndexes.
type Like struct {
	ID        uint64     `gorm:"primaryKey"`
	PoemID    uint64     `gorm:"not null;index"`
	Poem      *poem.Poem `gorm:"constraint:OnDelete:CASCADE"`
	UserID    *string    `gorm:"type:text"`
	UserIP    string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

// Identity is who a like belongs to. A non-empty UserID wins; otherwise the
// like is keyed by Address alone.
type Identity struct {
	UserID  string
	Address string
}

// Status is the like state of one poem as seen by one identity.
type Status struct {
	Count int64
	Liked bool
}

func (id Identity) match(poemID uint64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("poem_id = ?", poemID)
		if id.UserID != "" {
			return db.Where("user_id = ?", id.UserID)
		}
		return db.Where("user_ip = ? AND user_id IS NULL", id.Address)
	}
}

func (id Identity) userID() *string {
	if id.UserID == "" {
		return nil
	}
	u := id.UserID
	return &u
}
