package like

import (
	"context"
	"errors"
	"time"

	"poetry/internal/poem"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	DB *gorm.DB

	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

// Status reports the poem's total like count across both identity schemes
// and whether id currently holds a like.
func (s *Service) Status(ctx context.Context, poemID uint64, id Identity) (Status, error) {
	var st Status
	db := s.DB.WithContext(ctx)

	if err := db.Model(&Like{}).Where("poem_id = ?", poemID).Count(&st.Count).Error; err != nil {
		return Status{}, err
	}

	var mine int64
	if err := db.Model(&Like{}).Scopes(id.match(poemID)).Count(&mine).Error; err != nil {
		return Status{}, err
	}
	st.Liked = mine > 0
	return st, nil
}

// Toggle flips id's like on the poem. The delete runs first; only when it
// removed nothing is a row inserted, and the partial unique indexes turn a
// concurrent duplicate insert into a no-op.
func (s *Service) Toggle(ctx context.Context, poemID uint64, id Identity) (Status, error) {
	var st Status

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Scopes(id.match(poemID)).Delete(&Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			l := Like{
				PoemID:    poemID,
				UserID:    id.userID(),
				UserIP:    id.Address,
				CreatedAt: s.now(),
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&l).Error; err != nil {
				return err
			}
			st.Liked = true
		}

		return tx.Model(&Like{}).Where("poem_id = ?", poemID).Count(&st.Count).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return Status{}, poem.ErrNotFound
		}
		return Status{}, err
	}
	return st, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
