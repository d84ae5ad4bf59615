package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NhuNhui/GPS/internal/calculator"
	"github.com/NhuNhui/GPS/internal/metrics"
	"github.com/NhuNhui/GPS/internal/models"
	"github.com/NhuNhui/GPS/internal/repository"
)

// TargetService drains the fix queue: it polls for pending fix requests,
// computes target coordinates for each through the calculator, and writes
// the results (or the validation diagnostics) back.
type TargetService struct {
	log          *slog.Logger           // Logger for logging service activities
	repo         repository.Interface   // Interface for fix queue access
	calc         *calculator.Calculator // Calculator for the spherical target solution
	metrics      *metrics.Metrics       // Metrics for tracking service performance
	numWorkers   int                    // Number of concurrent workers for processing
	pollInterval time.Duration          // Interval for polling the fix queue
}

// NewTargetService creates a new instance of TargetService. It takes a
// logger, a repository interface, a calculator, metrics for monitoring, the
// number of workers to use, and a polling interval for the fix queue. It
// returns a pointer to the newly created TargetService.
func NewTargetService(
	log *slog.Logger,
	repo repository.Interface,
	calc *calculator.Calculator,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *TargetService {
	return &TargetService{
		log:          log,
		repo:         repo,
		calc:         calc,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run starts the target service, which periodically polls for new fix
// requests to compute. It listens for a cancellation signal from the context
// to gracefully stop the service.
func (ts *TargetService) Run(ctx context.Context) {
	ticker := time.NewTicker(ts.pollInterval)
	defer ticker.Stop()

	ts.log.InfoContext(ctx, "Target service started...")

	for {
		select {
		case <-ctx.Done():
			ts.log.InfoContext(ctx, "Target service stopped.")
			return
		case <-ticker.C:
			ts.log.InfoContext(ctx, "Polling for new fix requests...")
			ts.processFixes(ctx)
		}
	}
}

// processFixes fetches pending fix requests from the repository, starts a
// worker pool to process them, and waits for all workers to finish. It logs
// errors if fetching fails and logs the status of fix processing.
func (ts *TargetService) processFixes(ctx context.Context) {
	fixLimit := 100
	fixes, err := ts.repo.FetchPendingFixes(ctx, fixLimit)
	if err != nil {
		ts.log.ErrorContext(ctx, "Failed to fetch fixes", "error", err)
		return
	}
	if len(fixes) == 0 {
		ts.log.InfoContext(ctx, "No fixes to process.")
		return
	}

	ts.log.InfoContext(
		ctx,
		"Found fixes to process. Starting worker pool.",
		"jobs",
		len(fixes),
		"num_workers",
		ts.numWorkers,
	)

	jobs := make(chan models.FixTask, len(fixes))
	var wgr sync.WaitGroup

	for i := 1; i <= ts.numWorkers; i++ {
		wgr.Add(1)
		go ts.worker(ctx, i, &wgr, jobs)
	}

	for _, fix := range fixes {
		jobs <- fix
	}
	close(jobs)

	wgr.Wait()
	ts.log.InfoContext(ctx, "Processing batch finished")
}

// worker processes fix requests from the jobs channel. It increments the
// active worker count and measures the time taken for each calculation. A
// hard validation failure updates the failure count with the diagnostic; a
// successful calculation stores the target, and long-range advisories are
// counted and logged.
func (ts *TargetService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.FixTask) {
	defer wg.Done()
	for fix := range jobs {
		var err error

		ts.metrics.ActiveWorkers.Inc()
		ts.log.DebugContext(ctx, "Processing fix", "worker", idx, "fix", fix.ID)

		request := models.CalculationRequest{
			Observer:   models.GeoPoint{Latitude: fix.ObserverLat, Longitude: fix.ObserverLon},
			BearingDeg: fix.AzimuthDeg,
			DistanceKm: fix.DistanceKm,
		}

		startTime := time.Now()
		result, err := ts.calc.CalculateTarget(request)
		ts.metrics.CalculationSeconds.Observe(time.Since(startTime).Seconds())

		if err != nil {
			ts.log.ErrorContext(ctx, "Failed to calculate target", "worker", idx, "fix", fix.ID, "error", err)
			ts.metrics.FixesProcessed.WithLabelValues("failure").Inc()

			if err = ts.repo.IncrementFailureCount(ctx, fix.ID, err.Error()); err != nil {
				ts.log.ErrorContext(
					ctx,
					"Could not update failure count for fix",
					"worker", idx,
					"fix", fix.ID,
					"error", err,
				)
			}
			ts.metrics.ActiveWorkers.Dec()
			continue
		}

		ts.metrics.FixesProcessed.WithLabelValues("success").Inc()

		if result.Warning != "" {
			ts.metrics.AccuracyWarnings.Inc()
			ts.log.WarnContext(ctx, "Fix computed with degraded accuracy",
				"worker", idx, "fix", fix.ID, "warning", result.Warning)
		}

		if err = ts.repo.UpdateFixResult(ctx, fix.ID, result); err != nil {
			ts.log.ErrorContext(
				ctx,
				"Failed to store result for fix",
				"worker", idx,
				"fix", fix.ID,
				"error", err,
			)
		} else {
			ts.log.DebugContext(ctx, "Worker successfully processed the fix", "worker", idx, "fix", fix.ID)
		}

		ts.metrics.ActiveWorkers.Dec()
	}
}
