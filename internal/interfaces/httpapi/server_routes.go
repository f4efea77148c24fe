package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerHandicapRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/users/{userID}/handicap", handler.GetCurrentHandicap)
	mux.HandleFunc("GET /v1/users/{userID}/handicap/history", handler.ListHandicapHistory)
	mux.HandleFunc("GET /v1/users/{userID}/handicap/preview", handler.PreviewHandicap)
	mux.HandleFunc("POST /v1/users/{userID}/handicap/recalculate", handler.RecalculateHandicap)
	mux.HandleFunc("POST /v1/users/{userID}/handicap/manual", handler.RecordManualHandicap)
}

func registerStatisticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/users/{userID}/statistics", handler.GetUserStatistics)
	mux.HandleFunc("POST /v1/users/{userID}/statistics/recalculate", handler.RecalculateUserStatistics)
	mux.HandleFunc("GET /v1/users/{userID}/statistics/courses", handler.ListCourseStatistics)
	mux.HandleFunc("GET /v1/users/{userID}/statistics/holes", handler.ListHoleStatistics)
	mux.HandleFunc("GET /v1/users/{userID}/statistics/trends", handler.ListScoringTrends)
	mux.HandleFunc("GET /v1/users/{userID}/profile", handler.GetPlayerProfile)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/recompute", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecompute)))
}
