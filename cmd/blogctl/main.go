package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"goblog/internal/config"
	"goblog/internal/db"
	"goblog/internal/post"
	"goblog/internal/user"
)

// Management command: migrations plus role seeding for deployment, and
// randomized fixture data for development.
func main() {
	var (
		configPath = flag.String("config", "config.json", "path to config file")
		deploy     = flag.Bool("deploy", false, "run migrations and seed the canonical roles")
		fakeUsers  = flag.Int("fake-users", 0, "insert N randomized users")
		fakePosts  = flag.Int("fake-posts", 0, "insert N randomized posts")
	)
	flag.Parse()

	if !*deploy && *fakeUsers == 0 && *fakePosts == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}

	if *deploy {
		if err := user.InsertRoles(db.DB); err != nil {
			log.Fatalf("[Deploy] role seeding failed: %v", err)
		}
		log.Printf("[Deploy] canonical roles seeded")
	}
	if *fakeUsers > 0 {
		n, err := user.GenerateFake(db.DB, *fakeUsers)
		if err != nil {
			log.Fatalf("[Fixtures] user generation failed after %d inserts: %v", n, err)
		}
		log.Printf("[Fixtures] inserted %d users", n)
	}
	if *fakePosts > 0 {
		n, err := post.GenerateFake(db.DB, *fakePosts)
		if err != nil {
			log.Fatalf("[Fixtures] post generation failed after %d inserts: %v", n, err)
		}
		log.Printf("[Fixtures] inserted %d posts", n)
	}
}
