package database_test

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"videoshare/pkg/database"
	"videoshare/pkg/models"
)

func TestDropRemovesBothTables(t *testing.T) {
	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()
	db.DB().SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Video{}).Error; err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if !db.HasTable("user") || !db.HasTable("video") {
		t.Fatal("expected both tables after migration")
	}

	if err := database.Drop(db); err != nil {
		t.Fatalf("drop failed: %v", err)
	}

	if db.HasTable("user") {
		t.Error("user table still exists after drop")
	}
	if db.HasTable("video") {
		t.Error("video table still exists after drop")
	}

	// Dropping again is a no-op, like rerunning the reset tool.
	if err := database.Drop(db); err != nil {
		t.Errorf("second drop failed: %v", err)
	}
}
