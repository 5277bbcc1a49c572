package main

import (
	"log"

	"github.com/joho/godotenv"

	"videoshare/cmd/config"
	"videoshare/pkg/auth"
	"videoshare/pkg/database"
	"videoshare/pkg/handlers"
	"videoshare/pkg/s3"
	"videoshare/pkg/store"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	storage, err := s3.New(cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	app := &handlers.App{
		Users:    store.NewUserStore(db),
		Videos:   store.NewVideoStore(db),
		Storage:  storage,
		Sessions: auth.NewManager(cfg.SecretKey, cfg.SessionTTL),
		Cfg:      cfg,
	}

	r := app.Router()
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
