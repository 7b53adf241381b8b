package comment

import (
	"time"

	"poetry/internal/poem"
)

// Comment is append-only; it can be deleted but never edited.
type Comment struct {
	ID          uint64     `gorm:"primaryKey"`
	PoemID      uint64     `gorm:"not null;index"`
	Poem        *poem.Poem `gorm:"constraint:OnDelete:CASCADE"`
	AuthorName  string     `gorm:"type:text;not null"`
	CommentText string     `gorm:"type:text;not null"`
	CreatedAt   time.Time  `gorm:"not null"`
}
