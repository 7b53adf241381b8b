package view

import (
	"time"

	"poetry/internal/poem"
)

// Window is how long one address's view of a poem stays the current one.
const Window = 24 * time.Hour

// View is a single page view event. The count shown to readers is the number
// of distinct addresses, so extra rows never inflate it.
type View struct {
	ID        uint64     `gorm:"primaryKey"`
	PoemID    uint64     `gorm:"not null;index"`
	Poem      *poem.Poem `gorm:"constraint:OnDelete:CASCADE"`
	UserIP    string     `gorm:"type:text;not null"`
	CreatedAt time.Time  `gorm:"not null"`
}
