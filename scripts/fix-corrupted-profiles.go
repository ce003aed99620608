package main

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/dice-companion/internal/config"
	redisclient "github.com/KirkDiggler/dice-companion/internal/redis"
	"github.com/KirkDiggler/dice-companion/internal/repositories/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		log.Fatal("Failed to create Redis client:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	if err := redisclient.Ping(ctx, client); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", cfg.RedisAddr)
	fmt.Println("Scanning for corrupted profiles...")

	result, err := profile.FindCorrupt(ctx, client)
	if err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", result.Checked, len(result.Corrupt))

	if len(result.Corrupt) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range result.Corrupt {
		fmt.Printf("  - %s\n", key)
	}

	// Ask for confirmation before deletion
	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range result.Corrupt {
		if err := profile.DeleteCorrupt(ctx, client, key); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
