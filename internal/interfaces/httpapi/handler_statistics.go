package httpapi

import (
	"net/http"
)

func (h *Handler) GetUserStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserStatistics")
	defer span.End()

	userID := r.PathValue("userID")
	stats, err := h.statisticsService.GetUserStatistics(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "get user statistics failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userStatisticsToDTO(stats))
}

func (h *Handler) RecalculateUserStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateUserStatistics")
	defer span.End()

	userID := r.PathValue("userID")
	stats, err := h.statisticsService.CalculateUserStatistics(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate user statistics failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userStatisticsToDTO(stats))
}

func (h *Handler) ListCourseStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCourseStatistics")
	defer span.End()

	userID := r.PathValue("userID")
	items, err := h.statisticsService.GetCourseStatisticsForUser(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "list course statistics failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, courseSummariesToDTO(items))
}

func (h *Handler) ListHoleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHoleStatistics")
	defer span.End()

	userID := r.PathValue("userID")
	courseID := r.URL.Query().Get("course_id")
	items, err := h.statisticsService.GetHoleStatisticsForUser(ctx, userID, courseID)
	if err != nil {
		h.logger.WarnContext(ctx, "list hole statistics failed", "user_id", userID, "course_id", courseID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, holeSummariesToDTO(items))
}

func (h *Handler) ListScoringTrends(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScoringTrends")
	defer span.End()

	userID := r.PathValue("userID")
	months, err := queryInt(r, "months")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.statisticsService.GetRecentTrends(ctx, userID, months)
	if err != nil {
		h.logger.WarnContext(ctx, "list scoring trends failed", "user_id", userID, "months", months, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, monthlyTrendsToDTO(items))
}

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	userID := r.PathValue("userID")
	months, err := queryInt(r, "months")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.profileService.Get(ctx, userID, months)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerProfileToDTO(profile))
}
