package view

import (
	"context"
	"errors"
	"time"

	"poetry/internal/poem"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB

	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

// Record stores a view unless address already viewed the poem inside the
// window, then returns the distinct-address count either way.
func (s *Service) Record(ctx context.Context, poemID uint64, address string) (int64, error) {
	var count int64
	now := s.now()

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recent int64
		if err := tx.Model(&View{}).
			Where("poem_id = ? AND user_ip = ? AND created_at > ?", poemID, address, now.Add(-Window)).
			Count(&recent).Error; err != nil {
			return err
		}

		if recent == 0 {
			v := View{PoemID: poemID, UserIP: address, CreatedAt: now}
			if err := tx.Create(&v).Error; err != nil {
				return err
			}
		}

		return countDistinct(tx, poemID, &count)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, poem.ErrNotFound
		}
		return 0, err
	}
	return count, nil
}

// Count returns the number of distinct addresses that viewed the poem.
func (s *Service) Count(ctx context.Context, poemID uint64) (int64, error) {
	var count int64
	if err := countDistinct(s.DB.WithContext(ctx), poemID, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func countDistinct(db *gorm.DB, poemID uint64, out *int64) error {
	return db.Model(&View{}).
		Where("poem_id = ?", poemID).
		Distinct("user_ip").
		Count(out).Error
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
