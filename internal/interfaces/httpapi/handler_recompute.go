package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

func (h *Handler) RunRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRecompute")
	defer span.End()

	var req recomputeRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.recomputeService.Run(ctx, usecase.RecomputeInput{
		UserIDs:        req.UserIDs,
		Workers:        req.Workers,
		SkipStatistics: req.SkipStatistics,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute run failed", "requested_users", len(req.UserIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
