package sqlite

import (
	"fmt"
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var DB *gorm.DB

// GetDB returns the global DB handle (exposed for testing).
func GetDB() *gorm.DB {
	return DB
}

// InitDB opens an in-memory SQLite database and migrates the schema. State
// lives only for the lifetime of the process.
func InitDB() error {
	db, err := gorm.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %v", err)
	}
	db.LogMode(false)

	if err := db.AutoMigrate(&userRow{}, &postRow{}, &commentRow{}, &likeRow{}).Error; err != nil {
		db.Close()
		return fmt.Errorf("failed to migrate schema: %v", err)
	}

	DB = db
	log.Println("Connected to in-memory SQLite database.")
	return nil
}

// CloseDB closes the database connection.
func CloseDB() error {
	if DB == nil {
		return nil
	}

	if err := DB.Close(); err != nil {
		return fmt.Errorf("failed to close the database connection: %v", err)
	}

	log.Println("Database connection closed.")
	return nil
}

// InitDBWithConnection allows injecting a connection (for testing).
func InitDBWithConnection(db *gorm.DB) {
	DB = db
}
