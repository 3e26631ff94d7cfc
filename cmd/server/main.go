package main

import (
	"fmt"
	"log"
	"os"

	"goblog/internal/api"
	"goblog/internal/config"
	"goblog/internal/db"
)

func main() {
	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}

	r := api.SetupRouter(cfg)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("[Main] goblog listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("[Main] server error: %v", err)
	}
}
