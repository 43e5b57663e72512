package main

import (
	"log"
	"os"

	"noteverse-be/internal/model"
	"noteverse-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting GORM migration...")

	// Extensions AutoMigrate cannot create itself.
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: setup SQL failed: %v. Continuing...", err)
		}
	}

	models := []interface{}{
		&model.User{},
		&model.Note{},
		&model.Comment{},
		&model.Upvote{},
		&model.Bookmark{},
		&model.Notification{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			color.Red("Migration failed for %T: %v", m, err)
			os.Exit(1)
		}
		color.Green("Migrated %T", m)
	}

	color.Green("Migration complete.")
}
