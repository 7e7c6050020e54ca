package main

import (
	"context"
	"log"

	"github.com/voyago/voyago/internal/config"
	"github.com/voyago/voyago/internal/mockapi"
)

func main() {
	cfg := config.Load()

	var store mockapi.RecordStore
	if cfg.DatabaseURL != "" {
		pg, err := mockapi.NewPGStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("mockapi: %v", err)
		}
		defer pg.Close()
		store = pg
	} else {
		store = mockapi.NewMemStore()
	}

	if cfg.SeedFile != "" {
		if err := mockapi.SeedFile(context.Background(), store, cfg.SeedFile); err != nil {
			log.Fatalf("mockapi: %v", err)
		}
	}

	e := mockapi.NewRouter(store, cfg.AllowOrigins)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
