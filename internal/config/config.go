package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the env file named by START (.env-local or .env.docker) and
// fails fast on anything the process cannot run without.
func Load() {
	if err := godotenv.Load(os.Getenv("START")); err != nil {
		log.Fatalf("Env file not found")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatalf("JWT_SECRET is not set in environment")
	}
	if os.Getenv("MYSQL_DSN") == "" {
		log.Fatalf("MYSQL_DSN is not set in environment")
	}
	if os.Getenv("MONGO_URI") == "" {
		log.Fatalf("MONGO_URI is not set in environment")
	}
	if os.Getenv("MONGO_DB_NAME") == "" {
		log.Fatalf("MONGO_DB_NAME is not set in environment")
	}
}
