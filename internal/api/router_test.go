package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/AlexShukel/kdp-pdvrp/internal/adapters/cache"
	"github.com/AlexShukel/kdp-pdvrp/internal/adapters/repositories"
	"github.com/AlexShukel/kdp-pdvrp/internal/api/dto"
	"github.com/AlexShukel/kdp-pdvrp/internal/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repositories.InitSchema(db))

	repo := repositories.NewSqliteProblemRepository(db)
	solutionCache := cache.NewSqliteSolutionCache(db)
	solveSvc := services.NewSolveProblemService(solutionCache, repo)

	return NewRouter(solveSvc, repo)
}

func solveRequestBody() dto.SolveRequest {
	loc := func(hash string, lat, lon float64) dto.LocationRequest {
		return dto.LocationRequest{Hash: hash, Latitude: lat, Longitude: lon}
	}
	return dto.SolveRequest{
		Vehicles: []dto.VehicleRequest{
			{ID: 1, StartLocation: loc("hub", 0, 0), PriceKM: 1.0},
		},
		Orders: []dto.OrderRequest{
			{ID: 1, PickupLocation: loc("p", 0, 0), DeliveryLocation: loc("d", 0, 1), LoadFactor: 1.0},
		},
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSolveEndpointReturnsSolutionAndListsProblem(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(solveRequestBody())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var solResp dto.AlgorithmSolutionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &solResp))
	require.NotEmpty(t, solResp.BestDistanceSolution.Routes)

	listReq := httptest.NewRequest(http.MethodGet, "/problems", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	require.Equal(t, http.StatusOK, listRec.Code)

	var listResp dto.ListProblemsResponse
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &listResp))
	require.Len(t, listResp.ProblemHashes, 1)

	getReq := httptest.NewRequest(http.MethodGet, "/problems/"+listResp.ProblemHashes[0], nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)

	require.Equal(t, http.StatusOK, getRec.Code)
}

func TestSolveEndpointRejectsInvalidProblem(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader([]byte(`{"vehicles":[],"orders":[]}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveEndpointRejectsTrailingJSON(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(solveRequestBody())
	require.NoError(t, err)
	body = append(body, []byte(`{}`)...)

	req := httptest.NewRequest(http.MethodPost, "/solve", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSolveEndpointRejectsWrongMethod(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/solve", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestGetProblemEndpointMissingHashReturnsNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/problems/does-not-exist", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
