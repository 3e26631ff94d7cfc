package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"goblog/internal/config"
	"goblog/internal/post"
	"goblog/internal/user"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	conn, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	// Roles first: users carry the foreign key.
	if err := conn.AutoMigrate(&user.Role{}, &user.User{}, &post.Post{}); err != nil {
		return err
	}

	DB = conn
	log.Printf("Database connected and migrated")
	return nil
}
