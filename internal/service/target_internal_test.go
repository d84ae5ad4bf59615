package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/NhuNhui/GPS/internal/calculator"
	"github.com/NhuNhui/GPS/internal/metrics"
	"github.com/NhuNhui/GPS/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) FetchPendingFixes(ctx context.Context, limit int) ([]models.FixTask, error) {
	args := m.Called(ctx, limit)
	var fixes []models.FixTask
	if v := args.Get(0); v != nil {
		fixes = v.([]models.FixTask)
	}
	return fixes, args.Error(1)
}

func (m *mockRepo) UpdateFixResult(ctx context.Context, fixID int, result *models.CalculationResult) error {
	args := m.Called(ctx, fixID, result)
	return args.Error(0)
}

func (m *mockRepo) IncrementFailureCount(ctx context.Context, fixID int, errMsg string) error {
	args := m.Called(ctx, fixID, errMsg)
	return args.Error(0)
}

func TestProcessFixes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	calc := calculator.New(calculator.DefaultErrorBudget())
	ctx := t.Context()

	newService := func(repo *mockRepo) *TargetService {
		reg := prometheus.NewRegistry()
		return NewTargetService(logger, repo, calc, metrics.NewMetrics(reg), 2, 1*time.Second)
	}

	t.Run("successful processing", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)
		sampleFixes := []models.FixTask{
			{ID: 1, ObserverLat: 10.762622, ObserverLon: 106.660172, AzimuthDeg: 45, DistanceKm: 2.5},
		}

		repo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		repo.On("UpdateFixResult", ctx, 1, mock.MatchedBy(func(r *models.CalculationResult) bool {
			return r.Target.Latitude > 10.762622 && r.Warning == ""
		})).Return(nil).Once()

		service.processFixes(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("fetch fixes returns error", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)

		repo.On("FetchPendingFixes", ctx, 100).Return(nil, assert.AnError).Once()

		service.processFixes(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("fetch fixes returns empty list", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)

		repo.On("FetchPendingFixes", ctx, 100).Return([]models.FixTask{}, nil).Once()

		service.processFixes(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("invalid fix records the diagnostic", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)
		sampleFixes := []models.FixTask{
			{ID: 2, ObserverLat: 95, ObserverLon: 0, AzimuthDeg: 45, DistanceKm: 2.5},
		}

		repo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		repo.On("IncrementFailureCount", ctx, 2, mock.MatchedBy(func(msg string) bool {
			return msg != ""
		})).Return(nil).Once()

		service.processFixes(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("error to increment failure count", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)
		sampleFixes := []models.FixTask{
			{ID: 2, ObserverLat: 95, ObserverLon: 0, AzimuthDeg: 45, DistanceKm: 2.5},
		}

		repo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		repo.On("IncrementFailureCount", ctx, 2, mock.Anything).Return(assert.AnError).Once()

		service.processFixes(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("long range fix stores result with warning", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)
		sampleFixes := []models.FixTask{
			{ID: 3, ObserverLat: 21.028511, ObserverLon: 105.804817, AzimuthDeg: 200, DistanceKm: 150},
		}

		repo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		repo.On("UpdateFixResult", ctx, 3, mock.MatchedBy(func(r *models.CalculationResult) bool {
			return r.Warning != ""
		})).Return(nil).Once()

		service.processFixes(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("error to update fix result", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)
		sampleFixes := []models.FixTask{
			{ID: 1, ObserverLat: 10.762622, ObserverLon: 106.660172, AzimuthDeg: 45, DistanceKm: 2.5},
		}

		repo.On("FetchPendingFixes", ctx, 100).Return(sampleFixes, nil).Once()
		repo.On("UpdateFixResult", ctx, 1, mock.Anything).Return(assert.AnError).Once()

		service.processFixes(ctx)

		repo.AssertExpectations(t)
	})

	t.Run("run stops on context cancel", func(t *testing.T) {
		repo := &mockRepo{}
		service := newService(repo)

		tctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		service.Run(tctx)
	})
}
