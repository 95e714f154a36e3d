package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexShukel/kdp-pdvrp/internal/domain"
)

type fakeSolutionCache struct {
	mu    sync.Mutex
	store map[string]domain.AlgorithmSolution
	gets  int
	puts  int
}

func newFakeSolutionCache() *fakeSolutionCache {
	return &fakeSolutionCache{store: map[string]domain.AlgorithmSolution{}}
}

func (f *fakeSolutionCache) Get(_ context.Context, key string) (domain.AlgorithmSolution, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	sol, ok := f.store[key]
	return sol, ok, nil
}

func (f *fakeSolutionCache) Put(_ context.Context, key string, sol domain.AlgorithmSolution) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	f.store[key] = sol
	return nil
}

type fakeProblemRepository struct {
	mu    sync.Mutex
	saved map[string]domain.Problem
}

func newFakeProblemRepository() *fakeProblemRepository {
	return &fakeProblemRepository{saved: map[string]domain.Problem{}}
}

func (f *fakeProblemRepository) SaveProblem(_ context.Context, hash string, p domain.Problem, _ domain.AlgorithmSolution) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved[hash] = p
	return nil
}

func (f *fakeProblemRepository) GetProblem(_ context.Context, hash string) (domain.Problem, domain.AlgorithmSolution, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.saved[hash]
	return p, domain.AlgorithmSolution{}, ok, nil
}

func (f *fakeProblemRepository) ListProblems(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hashes := make([]string, 0, len(f.saved))
	for h := range f.saved {
		hashes = append(hashes, h)
	}
	return hashes, nil
}

func testLoc(hash string, lat, lon float64) domain.Location {
	return domain.Location{Hash: hash, Latitude: lat, Longitude: lon}
}

func testProblem() domain.Problem {
	return domain.Problem{
		Vehicles: []domain.Vehicle{{ID: 1, StartLocation: testLoc("HUB", 0, 0), PriceKM: 1.0}},
		Orders: []domain.Order{
			{ID: 1, PickupLocation: testLoc("p", 0, 0), DeliveryLocation: testLoc("d", 0, 1), LoadFactor: 1.0},
		},
	}
}

func TestHashProblemFoldsLocationHashCase(t *testing.T) {
	p1 := testProblem()
	p2 := testProblem()
	p2.Vehicles[0].StartLocation.Hash = "hub"

	h1, err := HashProblem(p1)
	require.NoError(t, err)
	h2, err := HashProblem(p2)
	require.NoError(t, err)

	require.Equal(t, h1, h2, "case-only differences in location hash must map to the same key")
}

func TestSolveProblemServiceCachesAndPersists(t *testing.T) {
	cache := newFakeSolutionCache()
	repo := newFakeProblemRepository()
	svc := NewSolveProblemService(cache, repo)

	p := testProblem()
	ctx := context.Background()

	sol, err := svc.Solve(ctx, p)
	require.NoError(t, err)
	require.NotEmpty(t, sol.BestDistanceSolution.Routes)

	hash, err := HashProblem(p)
	require.NoError(t, err)

	_, ok := cache.store[hash]
	require.True(t, ok, "first solve must populate the cache")
	_, ok = repo.saved[hash]
	require.True(t, ok, "first solve must persist the problem")

	// Second call must hit the cache rather than recomputing.
	cachedSol, err := svc.Solve(ctx, p)
	require.NoError(t, err)
	require.Equal(t, sol.BestDistanceSolution.TotalDistance, cachedSol.BestDistanceSolution.TotalDistance)
	require.Equal(t, 2, cache.gets)
	require.Equal(t, 1, cache.puts)
}

func TestSolveProblemServiceWorksWithoutCacheOrRepo(t *testing.T) {
	svc := NewSolveProblemService(nil, nil)

	sol, err := svc.Solve(context.Background(), testProblem())
	require.NoError(t, err)
	require.NotEmpty(t, sol.BestDistanceSolution.Routes)
}

func TestSolveProblemServicePropagatesInvalidProblem(t *testing.T) {
	svc := NewSolveProblemService(nil, nil)

	_, err := svc.Solve(context.Background(), domain.Problem{})
	require.Error(t, err)
}
