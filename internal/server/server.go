// Package server exposes the target calculator over HTTP for callers that
// are not on the fix queue. The endpoint is mounted on the same mux as the
// health and metrics handlers.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/NhuNhui/GPS/internal/calculator"
	"github.com/NhuNhui/GPS/internal/models"
)

// TargetHandler serves one-off target calculations.
type TargetHandler struct {
	log  *slog.Logger
	calc *calculator.Calculator
}

// NewTargetHandler creates a TargetHandler backed by the given calculator.
func NewTargetHandler(log *slog.Logger, calc *calculator.Calculator) *TargetHandler {
	return &TargetHandler{log: log, calc: calc}
}

// Calculate handles POST /api/v1/target. The body is a JSON
// CalculationRequest; the response is the full CalculationResult, or a 400
// with the validation diagnostic for a hard failure. Long-range advisories
// ride along in the result payload rather than failing the request.
func (h *TargetHandler) Calculate(writer http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	if req.Method != http.MethodPost {
		writer.Header().Set("Allow", http.MethodPost)
		h.writeError(writer, req, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var request models.CalculationRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.writeError(writer, req, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.calc.CalculateTarget(request)
	if err != nil {
		if isValidationError(err) {
			h.writeError(writer, req, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(ctx, "Calculation failed", "error", err)
		h.writeError(writer, req, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(writer, req, http.StatusOK, result)
}

func (h *TargetHandler) writeJSON(writer http.ResponseWriter, req *http.Request, status int, v any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(v); err != nil {
		h.log.ErrorContext(req.Context(), "failed to write reply",
			"method", req.Method, "path", req.URL.Path, "error", err)
	}
}

func (h *TargetHandler) writeError(writer http.ResponseWriter, req *http.Request, status int, msg string) {
	h.writeJSON(writer, req, status, map[string]string{"error": msg})
}

func isValidationError(err error) bool {
	for _, target := range []error{
		calculator.ErrLatitudeRange,
		calculator.ErrLongitudeRange,
		calculator.ErrBearingRange,
		calculator.ErrDistanceRange,
		calculator.ErrNotANumber,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
