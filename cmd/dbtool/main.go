package main

import (
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/AlexShukel/kdp-pdvrp/internal/adapters/repositories"
	"github.com/AlexShukel/kdp-pdvrp/internal/platform/config"
	"github.com/AlexShukel/kdp-pdvrp/internal/platform/db"
)

// dbtool initializes the Postgres schema used by the SQL-backed adapters
// (see internal/adapters/repositories/sql_init.go) and seeds one demo
// problem so a fresh deployment has something to browse via GET /problems.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open("pgx", databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchemaPostgres(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/problem.json")
	log.Println("Seeding demo problem...")
	repo := repositories.NewSQLProblemRepository(conn)
	if err := repositories.SeedDemoProblem(repo, seedPath, "demo"); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
