package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"poetry/internal/poem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid comment")

type Service struct {
	DB *gorm.DB
}

type AddInput struct {
	AuthorName  string
	CommentText string
}

func (in AddInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.AuthorName, validation.Required.Error("author_name is required")),
		validation.Field(&in.CommentText, validation.Required.Error("comment_text is required")),
	)
}

// List returns the poem's comments, newest first.
func (s *Service) List(ctx context.Context, poemID uint64) ([]Comment, error) {
	var out []Comment
	err := s.DB.WithContext(ctx).
		Where("poem_id = ?", poemID).
		Order("created_at desc").
		Order("id desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Add stores the comment as sent; whitespace-only fields count as missing.
func (s *Service) Add(ctx context.Context, poemID uint64, in AddInput) (uint64, error) {
	check := AddInput{
		AuthorName:  strings.TrimSpace(in.AuthorName),
		CommentText: strings.TrimSpace(in.CommentText),
	}
	if err := check.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c := Comment{
		PoemID:      poemID,
		AuthorName:  in.AuthorName,
		CommentText: in.CommentText,
	}
	if err := s.DB.WithContext(ctx).Create(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, poem.ErrNotFound
		}
		return 0, err
	}
	return c.ID, nil
}

// Remove deletes by id without an existence or ownership check; a missing id is a no-op.
func (s *Service) Remove(ctx context.Context, commentID uint64) error {
	return s.DB.WithContext(ctx).Where("id = ?", commentID).Delete(&Comment{}).Error
}
