package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/AlexShukel/kdp-pdvrp/internal/api/dto"
	"github.com/AlexShukel/kdp-pdvrp/internal/services"
)

// SolveHandler exposes the exact PDVRP solver over HTTP.
type SolveHandler struct {
	Service *services.SolveProblemService
}

func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SolveRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	problem := req.ToDomain()
	if err := problem.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	solution, err := h.Service.Solve(r.Context(), problem)
	if err != nil {
		log.Printf("solve problem failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromAlgorithmSolution(solution))
}
