// Command resetdb force-drops the user and video tables. The server
// recreates them empty on its next start. For operator use only.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"videoshare/cmd/config"
	"videoshare/pkg/database"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Drop(db); err != nil {
		log.Fatalf("reset: %v", err)
	}
	log.Println("dropped tables user and video; restart the server to recreate them")
}
