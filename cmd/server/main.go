package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/AlexShukel/kdp-pdvrp/internal/adapters/cache"
	"github.com/AlexShukel/kdp-pdvrp/internal/adapters/repositories"
	"github.com/AlexShukel/kdp-pdvrp/internal/api"
	"github.com/AlexShukel/kdp-pdvrp/internal/platform/config"
	"github.com/AlexShukel/kdp-pdvrp/internal/ports"
	"github.com/AlexShukel/kdp-pdvrp/internal/services"
)

// main is the application composition root. It wires concrete adapters
// (SQLite, optionally Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteProblemRepository(db)

	// Seed demo data on startup for local runs, same as dbtool does for a
	// fresh Postgres deployment.
	seedPath := config.Get("SEED_PATH", "data/seeds/problem.json")
	if err := repositories.SeedDemoProblem(repo, seedPath, "demo"); err != nil {
		log.Printf("seed demo problem skipped: %v", err)
	}

	var solutionCache ports.SolutionCache
	if redisAddr := config.Get("REDIS_ADDR", ""); strings.TrimSpace(redisAddr) != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		ttl := time.Duration(config.GetInt("SOLUTION_CACHE_TTL_SECONDS", 3600)) * time.Second
		solutionCache = cache.NewRedisSolutionCache(client, ttl)
		log.Printf("Using redis solution cache at %s", redisAddr)
	} else {
		solutionCache = cache.NewSqliteSolutionCache(db)
		log.Println("Using sqlite solution cache (set REDIS_ADDR to use redis)")
	}

	solveSvc := services.NewSolveProblemService(solutionCache, repo)
	router := api.NewRouter(solveSvc, repo)

	// WriteTimeout covers the worst-case exhaustive search over MaxOrders
	// orders; ReadTimeout/ReadHeaderTimeout guard against slow clients.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
