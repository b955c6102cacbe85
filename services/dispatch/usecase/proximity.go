package usecase

import (
	"context"
	"math"
	"sync"

	"github.com/piresc/antarkan/internal/pkg/logger"
	"github.com/piresc/antarkan/internal/pkg/models"
)

type distanceComputer interface {
	ComputeDistances(ctx context.Context, origins, destinations []models.Coordinate) ([]models.DistanceEntry, error)
}

// stop is an order's pickup and dropoff as seen by the clusterer
type stop struct {
	orderID string
	pickup  models.Coordinate
	dropoff models.Coordinate
}

type pairKey struct {
	a, b string
}

func newPairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

type pairDistance struct {
	pickup  float64
	dropoff float64
}

// ProximityTable holds pickup-to-pickup and dropoff-to-dropoff meters per order pair
type ProximityTable struct {
	mu    sync.Mutex
	pairs map[pairKey]*pairDistance
}

func newProximityTable() *ProximityTable {
	return &ProximityTable{pairs: make(map[pairKey]*pairDistance)}
}

func (t *ProximityTable) set(a, b string, pickupLeg bool, meters float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := newPairKey(a, b)
	d, ok := t.pairs[key]
	if !ok {
		d = &pairDistance{pickup: math.Inf(1), dropoff: math.Inf(1)}
		t.pairs[key] = d
	}
	if pickupLeg {
		d.pickup = meters
	} else {
		d.dropoff = meters
	}
}

// Distances returns the pickup and dropoff meters between two orders, +Inf when unknown
func (t *ProximityTable) Distances(a, b string) (pickup, dropoff float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	d, ok := t.pairs[newPairKey(a, b)]
	if !ok {
		return math.Inf(1), math.Inf(1)
	}
	return d.pickup, d.dropoff
}

// Within reports whether both legs between a and b are at most threshold meters
func (t *ProximityTable) Within(a, b string, threshold float64) bool {
	pickup, dropoff := t.Distances(a, b)
	return pickup <= threshold && dropoff <= threshold
}

// proximityJob is one matrix request: one origin against a chunk of destinations on one leg
type proximityJob struct {
	origin       stop
	destinations []stop
	pickupLeg    bool
}

func (j proximityJob) coordinates() ([]models.Coordinate, []models.Coordinate) {
	pick := func(s stop) models.Coordinate {
		if j.pickupLeg {
			return s.pickup
		}
		return s.dropoff
	}
	dests := make([]models.Coordinate, len(j.destinations))
	for i, d := range j.destinations {
		dests[i] = pick(d)
	}
	return []models.Coordinate{pick(j.origin)}, dests
}

// buildProximityTable fetches the distance from every candidate to each later
// candidate and to every existing member, fanning requests out concurrently.
func buildProximityTable(ctx context.Context, distances distanceComputer, candidates, members []stop, batchSize, concurrency int) *ProximityTable {
	table := newProximityTable()
	if batchSize <= 0 {
		batchSize = 10
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	var jobs []proximityJob
	for i, origin := range candidates {
		targets := make([]stop, 0, len(candidates)-i-1+len(members))
		targets = append(targets, candidates[i+1:]...)
		targets = append(targets, members...)

		for start := 0; start < len(targets); start += batchSize {
			end := start + batchSize
			if end > len(targets) {
				end = len(targets)
			}
			chunk := targets[start:end]
			jobs = append(jobs,
				proximityJob{origin: origin, destinations: chunk, pickupLeg: true},
				proximityJob{origin: origin, destinations: chunk, pickupLeg: false},
			)
		}
	}
	if len(jobs) == 0 {
		return table
	}

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(job proximityJob) {
			defer wg.Done()
			defer func() { <-sem }()
			fetchProximityRow(ctx, distances, table, job)
		}(job)
	}
	wg.Wait()

	return table
}

func fetchProximityRow(ctx context.Context, distances distanceComputer, table *ProximityTable, job proximityJob) {
	origins, dests := job.coordinates()

	entries, err := distances.ComputeDistances(ctx, origins, dests)
	if err != nil {
		leg := "dropoff"
		if job.pickupLeg {
			leg = "pickup"
		}
		logger.WarnCtx(ctx, "Distance lookup degraded, affected pairs are not groupable",
			logger.OrderID(job.origin.orderID),
			logger.String("leg", leg),
			logger.Int("destinations", len(dests)),
			logger.Int("entries_returned", len(entries)),
			logger.Err(err))
	}

	for _, e := range entries {
		if e.OriginIndex != 0 || e.DestinationIndex < 0 || e.DestinationIndex >= len(job.destinations) {
			continue
		}
		if math.IsNaN(e.DistanceMeters) || e.DistanceMeters < 0 {
			continue
		}
		table.set(job.origin.orderID, job.destinations[e.DestinationIndex].orderID, job.pickupLeg, e.DistanceMeters)
	}
}
