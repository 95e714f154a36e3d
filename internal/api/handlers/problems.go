package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/AlexShukel/kdp-pdvrp/internal/api/dto"
	"github.com/AlexShukel/kdp-pdvrp/internal/ports"
)

// ProblemsHandler exposes read access to previously solved problems.
type ProblemsHandler struct {
	Repo ports.ProblemRepository
}

func (h *ProblemsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	hashes, err := h.Repo.ListProblems(r.Context())
	if err != nil {
		log.Printf("list problems failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListProblemsResponse{ProblemHashes: hashes})
}

func (h *ProblemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	hash := strings.TrimPrefix(r.URL.Path, "/problems/")
	if hash == "" {
		writeError(w, r, http.StatusBadRequest, "missing problem hash")
		return
	}

	problem, solution, ok, err := h.Repo.GetProblem(r.Context(), hash)
	if err != nil {
		log.Printf("get problem failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "problem not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ProblemResponse{
		Problem:  dto.FromDomainProblem(problem),
		Solution: dto.FromAlgorithmSolution(solution),
	})
}
