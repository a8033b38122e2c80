package main

import (
	"context"
	"log"
	"time"

	"github.com/CryptoCardia/pilotroom-web/internal/config"
	"github.com/CryptoCardia/pilotroom-web/internal/db"
	"github.com/CryptoCardia/pilotroom-web/internal/pilots"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required to seed the pilot catalog")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	repo := pilots.NewRepository(cols.Pilots)
	for _, listing := range pilots.SampleListings() {
		if err := repo.Upsert(ctx, listing); err != nil {
			log.Fatalf("seed error for %s: %v", listing.Company, err)
		}
	}

	log.Printf("seed completed: %d pilots", len(pilots.SampleListings()))
}
