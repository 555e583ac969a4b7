package database

import (
	stdlog "log"
	"strings"
	"time"

	"citylegends/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database behind url. postgres:// and key=value DSNs go
// to PostgreSQL; sqlite:///path, file: and :memory: go to SQLite.
func Open(url string) (*gorm.DB, error) {
	// Configure GORM logger
	gormLogger := logger.New(
		stdlog.New(log.Logger, "", 0),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector(url), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite(url) {
		// SQLite serializes writers anyway; one connection keeps :memory: databases whole.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}

// Migrate creates or updates the users, rooms and chat_messages tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Room{}, &models.ChatMessage{})
}

func isSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite://") || strings.HasPrefix(url, "file:") || url == ":memory:"
}

func dialector(url string) gorm.Dialector {
	if !isSQLite(url) {
		return postgres.Open(url)
	}
	dsn := strings.TrimPrefix(url, "sqlite:///")
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	// Chat history relies on ON DELETE CASCADE, which SQLite only honours with this pragma.
	return sqlite.Open(dsn + sep + "_pragma=foreign_keys(1)")
}
