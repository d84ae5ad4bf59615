package repository

import (
	"context"
	"fmt"

	"github.com/NhuNhui/GPS/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewDatabase creates a pgx connection pool for the fix queue database and
// verifies connectivity with a ping.
func NewDatabase(host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// FetchPendingFixes retrieves fix requests that still need a target computed.
// It returns fixes with a NULL target latitude and fewer than 5 calculation
// attempts, ordered by creation date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of fixes to retrieve.
//
// Returns:
// - A slice of models.FixTask containing the fixes that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchPendingFixes(ctx context.Context, limit int) ([]models.FixTask, error) {
	var fixes []models.FixTask
	query := `
		SELECT fix_id, observer_lat, observer_lon, azimuth_deg, distance_km
		FROM public.fixes
		WHERE
			target_lat IS NULL
			AND attempts < 5
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending fixes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fix models.FixTask
		if errScan := rows.Scan(
			&fix.ID, &fix.ObserverLat, &fix.ObserverLon, &fix.AzimuthDeg, &fix.DistanceKm,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan pending fix: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new fix request without a target has been received.",
			"ID", fix.ID, "azimuth", fix.AzimuthDeg, "distance", fix.DistanceKm)
		fixes = append(fixes, fix)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return fixes, nil
}

// UpdateFixResult stores the computed target coordinates, the accuracy
// estimate and any long-range advisory for a fix identified by fixID. It
// clears the diagnostics field. It returns an error if the update fails.
func (r *Repository) UpdateFixResult(
	ctx context.Context,
	fixID int,
	result *models.CalculationResult,
) error {
	query := `
		UPDATE fixes
		SET
			target_lat = $1,
			target_lon = $2,
			estimated_error_m = $3,
			accuracy_warning = NULLIF($4, ''),
			diagnostics = NULL
		WHERE
			fix_id = $5;
	`

	_, err := r.db.Exec(ctx, query,
		result.Target.Latitude, result.Target.Longitude,
		result.EstimatedErrorM, result.Warning, fixID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fix result: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the calculation attempt count for a
// specific fix identified by fixID and updates the associated diagnostic
// message. If the update operation fails, it returns an error with
// additional context.
func (r *Repository) IncrementFailureCount(ctx context.Context, fixID int, errMsg string) error {
	query := `
		UPDATE fixes
		SET
			attempts = attempts + 1,
			diagnostics = $1
		WHERE fix_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, fixID)
	if err != nil {
		return fmt.Errorf("failed to update diagnostics and number of attempts: %w", err)
	}

	return nil
}
