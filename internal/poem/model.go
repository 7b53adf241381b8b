package poem

import "time"

// Poem owns its verses; both are written once and never updated through the API.
type Poem struct {
	ID          uint64  `gorm:"primaryKey"`
	Title       string  `gorm:"type:text;not null"`
	Author      string  `gorm:"type:text;not null"`
	Description *string `gorm:"type:text"`
	Theme       *string `gorm:"type:text"`
	WrittenDate *string `gorm:"type:text"`
	AudioURL    *string `gorm:"type:text"`

	Verses []Verse `gorm:"foreignKey:PoemID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Verse order is 1-based and unique per poem.
type Verse struct {
	ID         uint64 `gorm:"primaryKey"`
	PoemID     uint64 `gorm:"not null;index"`
	VerseOrder int    `gorm:"not null"`
	VerseText  string `gorm:"type:text;not null"`
}

// Lines returns the verse texts in stored order.
func (p Poem) Lines() []string {
	out := make([]string, 0, len(p.Verses))
	for _, v := range p.Verses {
		out = append(out, v.VerseText)
	}
	return out
}
