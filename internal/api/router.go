package api

import (
	"net/http"

	"github.com/AlexShukel/kdp-pdvrp/internal/api/handlers"
	"github.com/AlexShukel/kdp-pdvrp/internal/ports"
	"github.com/AlexShukel/kdp-pdvrp/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(solveSvc *services.SolveProblemService, repo ports.ProblemRepository) http.Handler {
	mux := http.NewServeMux()

	solveHandler := &handlers.SolveHandler{Service: solveSvc}
	problemsHandler := &handlers.ProblemsHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/solve", solveHandler.Solve)
	mux.HandleFunc("/problems", problemsHandler.List)
	mux.HandleFunc("/problems/", problemsHandler.Get)

	return loggingMiddleware(mux)
}
