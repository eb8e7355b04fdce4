package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/DerekRojGar/awa-AquaReminder/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DataDir returns the directory holding intake.db, profile.json and theme.json,
// creating it if needed. Overridable with AWA_DATA_DIR.
func DataDir() string {
	dir := os.Getenv("AWA_DATA_DIR")
	if dir == "" {
		dir = filepath.Join("storage", "data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory %s: %v", dir, err)
	}
	return dir
}

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment as-is")
	}

	gormLogger := logger.Default.LogMode(logger.Silent)

	var err error
	DB, err = gorm.Open(sqlite.Open(filepath.Join(DataDir(), "intake.db")), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(&models.IntakeEvent{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Addr is the listen address for the local UI to connect to.
func Addr() string {
	if addr := os.Getenv("AWA_ADDR"); addr != "" {
		return addr
	}
	return "127.0.0.1:8080"
}

// UIOrigin is the origin the CORS layer allows.
func UIOrigin() string {
	if origin := os.Getenv("AWA_UI_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:3000"
}
