package sqlstore

import (
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"neuronotes-backend/domain"
)

// Open connects to the database named by url. Postgres URLs get the
// postgres driver; anything else (file paths, ":memory:") is treated as
// a sqlite DSN, which is what tests and local development use.
func Open(url string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		dialector = postgres.Open(url)
	} else {
		dialector = sqlite.Open(url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Surfaces unique-constraint violations as gorm.ErrDuplicatedKey
		// so races lost at the storage layer map to AlreadyExists.
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if dialector.Name() == "sqlite" {
		// sqlite ships with FK enforcement off; cascade deletes depend on it.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// One connection keeps the pragma (and in-memory databases) stable.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates the schema. Parents migrate before children so the
// cascade FK constraints come up in order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Topic{},
		&domain.TopicEdge{},
		&domain.NoteTag{},
		&domain.Note{},
		&domain.NoteTagMap{},
	)
}
