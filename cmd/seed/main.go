package main

import (
	"log"
	"os"

	"noteverse-be/internal/model"
	"noteverse-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds a small browsable dataset for local development.
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

	alice := model.User{
		Id:         uuid.New(),
		ExternalId: "seed_user_alice",
		Email:      "alice@example.com",
		Name:       "Alice",
	}
	bob := model.User{
		Id:         uuid.New(),
		ExternalId: "seed_user_bob",
		Email:      "bob@example.com",
		Name:       "Bob",
	}
	for _, u := range []*model.User{&alice, &bob} {
		if err := db.Where("external_id = ?", u.ExternalId).FirstOrCreate(u).Error; err != nil {
			color.Red("Failed to seed user %s: %v", u.Name, err)
			os.Exit(1)
		}
	}
	color.Green("Seeded users")

	notes := []model.Note{
		{
			Id:          uuid.New(),
			Title:       "Linear Algebra Summary",
			Description: "Condensed notes covering vector spaces, eigenvalues and diagonalization.",
			ImageUrl:    "https://example.com/covers/linalg.png",
			PdfUrl:      "https://example.com/pdfs/linalg.pdf",
			Category:    "Mathematics",
			Visibility:  "PUBLIC",
			Upvotes:     2,
			UserId:      alice.Id,
		},
		{
			Id:          uuid.New(),
			Title:       "Operating Systems Cheat Sheet",
			Description: "Scheduling, memory management and synchronization primitives in one page.",
			ImageUrl:    "https://example.com/covers/os.png",
			PdfUrl:      "https://example.com/pdfs/os.pdf",
			Category:    "Computer Science",
			Visibility:  "PUBLIC",
			UserId:      bob.Id,
		},
	}
	for i := range notes {
		if err := db.Where("title = ?", notes[i].Title).FirstOrCreate(&notes[i]).Error; err != nil {
			color.Red("Failed to seed note %q: %v", notes[i].Title, err)
			os.Exit(1)
		}
	}
	color.Green("Seeded notes")

	root := model.Comment{
		Id:      uuid.New(),
		Content: "Great summary, the eigenvalue section saved me.",
		NoteId:  notes[0].Id,
		UserId:  bob.Id,
	}
	if err := db.Where("content = ?", root.Content).FirstOrCreate(&root).Error; err != nil {
		color.Red("Failed to seed comment: %v", err)
		os.Exit(1)
	}
	reply := model.Comment{
		Id:       uuid.New(),
		Content:  "Glad it helped!",
		NoteId:   notes[0].Id,
		UserId:   alice.Id,
		ParentId: &root.Id,
	}
	if err := db.Where("content = ?", reply.Content).FirstOrCreate(&reply).Error; err != nil {
		color.Red("Failed to seed reply: %v", err)
		os.Exit(1)
	}
	color.Green("Seeded comments")

	upvotes := []model.Upvote{
		{Id: uuid.New(), NoteId: notes[0].Id, UserId: bob.Id},
		{Id: uuid.New(), NoteId: notes[0].Id, UserId: alice.Id},
	}
	for i := range upvotes {
		if err := db.Where("note_id = ? AND user_id = ?", upvotes[i].NoteId, upvotes[i].UserId).
			FirstOrCreate(&upvotes[i]).Error; err != nil {
			color.Red("Failed to seed upvote: %v", err)
			os.Exit(1)
		}
	}
	color.Green("Seeded upvotes")

	color.Green("Seeding complete.")
}
