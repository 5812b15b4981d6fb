// Command seed writes the default admin documents (products, orders,
// messages, notifications, settings) into the configured storage so a
// fresh deployment starts with demo data.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
)

func main() {
	_ = godotenv.Load()

	config.ConnectRedis()

	var storage adminstore.DocumentStorage
	if config.RedisClient != nil {
		storage = adminstore.NewRedisStorage(config.RedisClient, "anta:")
	} else {
		fileStorage, err := adminstore.NewFileStorage(config.GetEnv("ADMIN_DATA_DIR", "./data"))
		if err != nil {
			log.Fatalf("❌ no storage to seed into: %v", err)
		}
		storage = fileStorage
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// NewStore hydrates from storage and falls back to the seed data for
	// any missing document; Snapshot writes everything back out.
	store := adminstore.NewStore(ctx, storage, nil)
	store.Snapshot(ctx)
	log.Println("✅ Admin documents seeded")
}
