package db

import (
	"fmt"

	"poetry/internal/comment"
	"poetry/internal/like"
	"poetry/internal/poem"
	"poetry/internal/view"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config returns the gorm settings shared by production and test databases.
// TranslateError lets services match gorm.ErrForeignKeyViolated and
// gorm.ErrDuplicatedKey regardless of driver.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

func Connect(dsn string, maxOpenConns int) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), Config())
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	// Requests beyond the pool size wait for a free connection.
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)

	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&poem.Poem{},
		&poem.Verse{},
		&comment.Comment{},
		&like.Like{},
		&view.View{},
	); err != nil {
		return err
	}

	// Partial indexes are supported by both postgres and sqlite.
	stmts := []string{
		`create unique index if not exists uq_verses_poem_order on verses(poem_id, verse_order);`,
		`create unique index if not exists uq_likes_poem_user on likes(poem_id, user_id) where user_id is not null;`,
		`create unique index if not exists uq_likes_poem_ip on likes(poem_id, user_ip) where user_id is null;`,
		`create index if not exists idx_views_poem_ip_created on views(poem_id, user_ip, created_at);`,
		`create index if not exists idx_comments_poem_created on comments(poem_id, created_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
