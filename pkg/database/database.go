package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"videoshare/cmd/config"
	"videoshare/pkg/models"
)

// Connect opens the postgres connection without touching the schema.
func Connect(cfg config.Config) (*gorm.DB, error) {
	db, err := gorm.Open("postgres", cfg.DatabaseURI())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Open connects to postgres and creates the user and video tables if they
// do not exist yet.
func Open(cfg config.Config) (*gorm.DB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Video{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return db, nil
}

// Drop force-removes both application tables, cascading to anything that
// depends on them. Only the resetdb tool calls this; the server recreates
// the schema on next start.
func Drop(db *gorm.DB) error {
	cascade := ""
	if db.Dialect().GetName() == "postgres" {
		cascade = " CASCADE"
	}
	for _, table := range []string{"video", "user"} {
		stmt := fmt.Sprintf(`DROP TABLE IF EXISTS %q%s`, table, cascade)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
