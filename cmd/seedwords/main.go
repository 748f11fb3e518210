// Command seedwords installs the stock word list into the database.
// Safe to run more than once: existing words are skipped.
package main

import (
	"log"

	"guessword/internal/config"
	"guessword/internal/database"
	"guessword/internal/repository"
	"guessword/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	wordService := service.NewWordService(repository.NewWordRepository(db))

	inserted, err := wordService.SeedDefaults()
	if err != nil {
		log.Fatalf("Failed to seed words: %v", err)
	}

	total, err := wordService.CountWords()
	if err != nil {
		log.Fatalf("Failed to count words: %v", err)
	}

	log.Printf("Seeded %d new words (%d total)", inserted, total)
}
