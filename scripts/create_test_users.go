package main

import (
	"context"
	"fmt"
	"log"

	"github.com/lucasmrdev/meeting-planner/internal/adapter/repository"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/infrastructure/database"
	"github.com/lucasmrdev/meeting-planner/pkg/config"
	pkgjwt "github.com/lucasmrdev/meeting-planner/pkg/jwt"
)

func main() {
	log.Println("🚀 Starting test users creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	userRepo := repository.NewUserRepository(db)
	ctx := context.Background()

	// Define test users
	testUsers := []struct {
		Email string
		Name  string
	}{
		{Email: "alice@test.local", Name: "Alice"},
		{Email: "bob@test.local", Name: "Bob"},
		{Email: "carla@test.local", Name: "Carla"},
	}

	log.Println("🗑️  Cleaning up existing test users...")
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	log.Println("🔑 Creating test users and tokens...")

	for i, testUser := range testUsers {
		user := entities.NewUser(testUser.Email, testUser.Name)

		if err := userRepo.Create(ctx, user); err != nil {
			log.Printf("❌ Failed to create user %s: %v", testUser.Email, err)
			continue
		}

		accessToken, err := jwtManager.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			log.Printf("❌ Failed to generate access token for %s: %v", testUser.Email, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 User %d: %s\n", i+1, testUser.Name)
		fmt.Printf("Email:    %s\n", user.Email)
		fmt.Printf("User ID:  %s\n", user.ID)
		fmt.Printf("\n📋 Access Token (Copy to Postman):\n%s\n", accessToken)
		fmt.Printf("───────────────────────────────────────────────────────\n\n")
	}

	log.Println("✅ All test users created successfully!")
	log.Println("💡 In Postman, set header: Authorization: Bearer <access_token>")
	log.Println("🧹 To clean up: DELETE FROM users WHERE email LIKE '%@test.local'")
}
