package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/golf-tracker/internal/domain/handicap"
	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

func (h *Handler) GetCurrentHandicap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentHandicap")
	defer span.End()

	userID := r.PathValue("userID")
	value, exists, err := h.handicapService.GetCurrent(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get current handicap failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := currentHandicapDTO{UserID: userID}
	if exists {
		out.HandicapIndex = &value
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListHandicapHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHandicapHistory")
	defer span.End()

	userID := r.PathValue("userID")
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.handicapService.ListHistory(ctx, userID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list handicap history failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]handicapHistoryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, handicapHistoryToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

// PreviewHandicap shows the differentials behind an index without recording it.
func (h *Handler) PreviewHandicap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewHandicap")
	defer span.End()

	userID := r.PathValue("userID")
	calc, ok, err := h.handicapService.CalculateFromRounds(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "preview handicap failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: %d completed rounds, at least %d required",
			usecase.ErrInsufficientData, calc.RoundsAvailable, handicap.MinRounds))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, handicapPreviewToDTO(userID, calc))
}

func (h *Handler) RecalculateHandicap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateHandicap")
	defer span.End()

	userID := r.PathValue("userID")
	entry, updated, err := h.handicapService.UpdateFromRounds(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate handicap failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := handicapRecalculationDTO{UserID: userID, Updated: updated}
	if updated {
		item := handicapHistoryToDTO(entry)
		out.HandicapIndex = &item.HandicapIndex
		out.Entry = &item
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) RecordManualHandicap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordManualHandicap")
	defer span.End()

	userID := r.PathValue("userID")
	var req manualHandicapRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, err := h.handicapService.RecordManual(ctx, usecase.ManualHandicapInput{
		UserID:        userID,
		HandicapIndex: *req.HandicapIndex,
		Method:        req.Method,
		Notes:         req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record manual handicap failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, handicapHistoryToDTO(entry))
}
