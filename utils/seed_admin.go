package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SeedAdminUser creates the initial admin account from ADMIN_EMAIL,
// ADMIN_PASSWORD and ADMIN_ID. A no-op when the env vars are unset, and
// idempotent when the account already exists.
func SeedAdminUser(ctx context.Context, adminsCol *mongo.Collection) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	pass := os.Getenv("ADMIN_PASSWORD")
	adminID := strings.TrimSpace(os.Getenv("ADMIN_ID"))

	if email == "" || pass == "" || adminID == "" {
		log.Println("Admin seed skipped: ADMIN_EMAIL, ADMIN_PASSWORD or ADMIN_ID not set")
		return nil
	}
	if !IsValidAdminID(adminID) {
		return fmt.Errorf("ADMIN_ID %q must be ADB followed by 5 digits", adminID)
	}

	hash, err := HashPassword(pass)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	firstName := os.Getenv("ADMIN_FIRST_NAME")
	if firstName == "" {
		firstName = "Club"
	}
	lastName := os.Getenv("ADMIN_LAST_NAME")
	if lastName == "" {
		lastName = "Admin"
	}

	// Only insert if it doesn't exist
	filter := bson.M{"email": email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"firstName":    firstName,
			"lastName":     lastName,
			"email":        email,
			"adminId":      adminID,
			"passwordHash": hash,
			"createdAt":    time.Now().UTC(),
		},
	}

	opts := options.UpdateOne().SetUpsert(true)
	res, err := adminsCol.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("seed admin upsert failed: %w", err)
	}

	if res.UpsertedCount == 1 {
		log.Println("Admin user seeded:", email)
	} else {
		log.Println("Admin user already exists:", email)
	}

	return nil
}
