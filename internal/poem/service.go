package poem

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("poem not found")
var ErrInvalidInput = errors.New("invalid poem")

type Service struct {
	DB *gorm.DB

	// DefaultAuthor is used when a poem is created without an author.
	DefaultAuthor string
}

type CreateInput struct {
	Title       string
	Author      string
	Verses      []string
	Description *string
	Theme       *string
	WrittenDate *string
	AudioURL    *string
}

func (in CreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("title is required")),
		validation.Field(&in.Verses, validation.Required.Error("at least one verse is required")),
	)
}

func (s *Service) List(ctx context.Context) ([]Poem, error) {
	var poems []Poem
	err := s.DB.WithContext(ctx).
		Preload("Verses", orderedVerses).
		Order("id asc").
		Find(&poems).Error
	if err != nil {
		return nil, err
	}
	return poems, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (*Poem, error) {
	var p Poem
	err := s.DB.WithContext(ctx).
		Preload("Verses", orderedVerses).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts the poem and its verses in one transaction and returns the new id.
func (s *Service) Create(ctx context.Context, in CreateInput) (uint64, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := in.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		author = s.DefaultAuthor
	}

	p := Poem{
		Title:       in.Title,
		Author:      author,
		Description: in.Description,
		Theme:       in.Theme,
		WrittenDate: in.WrittenDate,
		AudioURL:    in.AudioURL,
		Verses:      make([]Verse, 0, len(in.Verses)),
	}
	for i, text := range in.Verses {
		p.Verses = append(p.Verses, Verse{VerseOrder: i + 1, VerseText: text})
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&p).Error
	})
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

func orderedVerses(db *gorm.DB) *gorm.DB {
	return db.Order("verse_order asc")
}
