package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/Decanton/Twitter-Clone/internal/server"
	"github.com/Decanton/Twitter-Clone/internal/server/config"
)

func main() {

	// Local development convenience; absent files are fine.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
