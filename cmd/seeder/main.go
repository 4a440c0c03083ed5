package main

import (
	"log"

	"github.com/The-morning-star23/tars-chart/internal/config"
	"github.com/The-morning-star23/tars-chart/internal/database"
	"github.com/The-morning-star23/tars-chart/internal/models"
	"github.com/The-morning-star23/tars-chart/internal/services"
	"github.com/The-morning-star23/tars-chart/pkg/utils"
)

// Seeds a few demo users and conversations for local development.
func main() {
	config.LoadConfig()
	database.Connect()

	log.Println("Running migrations (just in case)...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Conversation{},
		&models.ConversationMember{},
		&models.Message{},
		&models.MessageReaction{},
		&models.ReadReceipt{},
		&models.TypingStatus{},
		&models.Presence{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	users := []struct{ id, name, email string }{
		{"demo_ada", "Ada Lovelace", "ada@example.com"},
		{"demo_alan", "Alan Turing", "alan@example.com"},
		{"demo_grace", "Grace Hopper", "grace@example.com"},
	}
	for _, u := range users {
		if _, err := services.SyncUser(u.id, u.name, u.email, ""); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.id, err)
		}
		// Dev convenience: a ready-to-use bearer token per demo user
		token, err := utils.GenerateToken(u.id, u.name, u.email, "")
		if err != nil {
			log.Fatalf("Failed to generate token for %s: %v", u.id, err)
		}
		log.Printf("Token for %s: %s", u.id, token)
	}
	log.Printf("Seeded %d users", len(users))

	conv, err := services.GetOrCreateDirect("demo_ada", "demo_alan")
	if err != nil {
		log.Fatalf("Failed to seed direct conversation: %v", err)
	}
	if _, err := services.SendMessage("demo_ada", conv.ID, "Hey Alan, have you seen the new engine?"); err != nil {
		log.Fatalf("Failed to seed message: %v", err)
	}
	if _, err := services.SendMessage("demo_alan", conv.ID, "Just looking at it now."); err != nil {
		log.Fatalf("Failed to seed message: %v", err)
	}

	group, err := services.CreateGroup("demo_grace", "Compilers", []string{"demo_ada", "demo_alan"})
	if err != nil {
		log.Fatalf("Failed to seed group: %v", err)
	}
	if _, err := services.SendMessage("demo_grace", group.ID, "Welcome to the compilers group!"); err != nil {
		log.Fatalf("Failed to seed group message: %v", err)
	}

	log.Println("Seeding complete")
}
