package repository

import (
	"context"
	"log/slog"

	"github.com/NhuNhui/GPS/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository persists fix requests and their computed targets.
type Repository struct {
	db  Database
	log *slog.Logger
}

// Database is the subset of pgxpool.Pool the repository needs. Narrowing the
// dependency lets tests substitute a mock pool.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Interface describes the fix queue operations used by the target service.
type Interface interface {
	FetchPendingFixes(ctx context.Context, limit int) ([]models.FixTask, error)
	UpdateFixResult(ctx context.Context, fixID int, result *models.CalculationResult) error
	IncrementFailureCount(ctx context.Context, fixID int, errMsg string) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
