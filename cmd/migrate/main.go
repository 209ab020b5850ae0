// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go              # Apply the schema
package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"

	"github.com/fabforge/fabquote/config"
	"github.com/fabforge/fabquote/internal/db"
)

func main() {
	// A missing .env is fine; everything falls back to defaults.
	_ = godotenv.Load()

	gormDB, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     config.GetEnvInt("DB_PORT", db.DefaultPort),
		LogLevel: logger.Info,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Schema is up to date")
}
