package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/golf-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-tracker/internal/platform/id"
	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
	"github.com/riskibarqy/golf-tracker/internal/platform/metrics"
	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

const testJobToken = "job-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	roundRepo, err := memory.NewRoundRepository(memory.SeedCourses(), memory.SeedRounds(time.Now().UTC()))
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	recorder := metrics.NewService(registry)
	logger := logging.NewNop()

	handicaps := usecase.NewHandicapService(roundRepo, memory.NewHandicapRepository(), id.NewUUIDGenerator(), recorder, logger)
	stats := usecase.NewStatisticsService(roundRepo, memory.NewStatisticsRepository(), usecase.StatisticsConfig{DefaultTrendMonths: 6}, recorder, logger)
	profiles := usecase.NewProfileService(handicaps, stats)
	recompute := usecase.NewRecomputeService(roundRepo, handicaps, stats, 2, logger)

	handler := NewHandler(handicaps, stats, profiles, recompute, logger)
	return NewRouter(handler, logger, RouterOptions{
		CORSAllowedOrigins: []string{"*"},
		InternalJobToken:   testJobToken,
		MetricsHandler:     metrics.NewHandler(registry),
	})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers ...string) (int, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func dataObject(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected object data, got %v", body)
	return data
}

func dataList(t *testing.T, body map[string]any) []any {
	t.Helper()
	data, ok := body["data"].([]any)
	require.True(t, ok, "expected list data, got %v", body)
	return data
}

func errorStatus(body map[string]any) string {
	errObj, _ := body["error"].(map[string]any)
	status, _ := errObj["status"].(string)
	return status
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", dataObject(t, body)["status"])
}

func TestRouter_HandicapLifecycle(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/users/" + memory.UserIDDemoGolfer

	code, body := doRequest(t, router, http.MethodGet, base+"/handicap", "")
	require.Equal(t, http.StatusOK, code)
	require.Nil(t, dataObject(t, body)["handicap_index"])

	code, body = doRequest(t, router, http.MethodPost, base+"/handicap/recalculate", "")
	require.Equal(t, http.StatusOK, code)
	recalculated := dataObject(t, body)
	require.Equal(t, true, recalculated["updated"])
	index, ok := recalculated["handicap_index"].(float64)
	require.True(t, ok)

	code, body = doRequest(t, router, http.MethodGet, base+"/handicap", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, index, dataObject(t, body)["handicap_index"])

	code, body = doRequest(t, router, http.MethodGet, base+"/handicap/preview", "")
	require.Equal(t, http.StatusOK, code)
	preview := dataObject(t, body)
	require.Equal(t, index, preview["handicap_index"])
	require.Equal(t, float64(12), preview["rounds_available"])

	selected := 0
	for _, item := range preview["differentials"].([]any) {
		if item.(map[string]any)["selected"] == true {
			selected++
		}
	}
	require.Equal(t, 4, selected)

	code, body = doRequest(t, router, http.MethodPost, base+"/handicap/manual", `{"handicap_index": 60, "notes": "club committee"}`)
	require.Equal(t, http.StatusCreated, code)
	manual := dataObject(t, body)
	require.Equal(t, 54.0, manual["handicap_index"])
	require.Equal(t, "Manual", manual["calculation_method"])

	code, body = doRequest(t, router, http.MethodGet, base+"/handicap/history?limit=1", "")
	require.Equal(t, http.StatusOK, code)
	history := dataList(t, body)
	require.Len(t, history, 1)
	require.Equal(t, 54.0, history[0].(map[string]any)["handicap_index"])
}

func TestRouter_HandicapInsufficientRounds(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/users/" + memory.UserIDDemoRookie

	code, body := doRequest(t, router, http.MethodPost, base+"/handicap/recalculate", "")
	require.Equal(t, http.StatusOK, code)
	data := dataObject(t, body)
	require.Equal(t, false, data["updated"])
	require.Nil(t, data["handicap_index"])

	code, body = doRequest(t, router, http.MethodGet, base+"/handicap/preview", "")
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Equal(t, "FAILED_PRECONDITION", errorStatus(body))
}

func TestRouter_ManualHandicapValidation(t *testing.T) {
	router := newTestRouter(t)
	target := "/v1/users/" + memory.UserIDDemoGolfer + "/handicap/manual"

	tests := []struct {
		name string
		body string
	}{
		{name: "missing index", body: `{"notes": "x"}`},
		{name: "unknown field", body: `{"handicap_index": 10, "source": "app"}`},
		{name: "malformed json", body: `{"handicap_index":`},
		{name: "empty body", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := doRequest(t, router, http.MethodPost, target, tt.body)
			require.Equal(t, http.StatusBadRequest, code)
			require.Equal(t, "INVALID_ARGUMENT", errorStatus(body))
		})
	}
}

func TestRouter_QueryValidation(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/users/" + memory.UserIDDemoGolfer

	for _, target := range []string{
		base + "/handicap/history?limit=abc",
		base + "/handicap/history?limit=-1",
		base + "/statistics/trends?months=25",
		base + "/statistics/trends?months=x",
		base + "/profile?months=-3",
	} {
		code, body := doRequest(t, router, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, code, target)
		require.Equal(t, "INVALID_ARGUMENT", errorStatus(body), target)
	}
}

func TestRouter_Statistics(t *testing.T) {
	router := newTestRouter(t)
	base := "/v1/users/" + memory.UserIDDemoGolfer

	code, body := doRequest(t, router, http.MethodGet, base+"/statistics", "")
	require.Equal(t, http.StatusOK, code)
	stats := dataObject(t, body)
	require.Equal(t, float64(12), stats["rounds_played"])
	require.Equal(t, float64(12*18), stats["holes_played"])
	require.Equal(t, memory.CourseIDPondokIndah, stats["favorite_course_id"])

	code, body = doRequest(t, router, http.MethodGet, base+"/statistics/courses", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, dataList(t, body), 2)

	code, body = doRequest(t, router, http.MethodGet, base+"/statistics/holes?course_id="+memory.CourseIDRoyalJakarta, "")
	require.Equal(t, http.StatusOK, code)
	holes := dataList(t, body)
	require.Len(t, holes, 18)
	require.Equal(t, float64(4), holes[0].(map[string]any)["played"])

	code, body = doRequest(t, router, http.MethodGet, base+"/statistics/trends?months=3", "")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, dataList(t, body), 3)

	code, body = doRequest(t, router, http.MethodPost, base+"/statistics/recalculate", "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, float64(12), dataObject(t, body)["rounds_played"])
}

func TestRouter_Profile(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest(t, router, http.MethodGet, "/v1/users/"+memory.UserIDDemoRookie+"/profile?months=2", "")
	require.Equal(t, http.StatusOK, code)
	profile := dataObject(t, body)
	require.Nil(t, profile["handicap_index"])
	require.Len(t, profile["trends"], 2)
	require.Equal(t, float64(3), profile["statistics"].(map[string]any)["rounds_played"])
}

func TestRouter_InternalRecompute(t *testing.T) {
	router := newTestRouter(t)

	code, body := doRequest(t, router, http.MethodPost, "/v1/internal/recompute", "")
	require.Equal(t, http.StatusUnauthorized, code)
	require.Equal(t, "UNAUTHENTICATED", errorStatus(body))

	code, body = doRequest(t, router, http.MethodPost, "/v1/internal/recompute", "", internalJobTokenHeader, testJobToken)
	require.Equal(t, http.StatusOK, code)
	result := dataObject(t, body)
	require.Equal(t, float64(2), result["user_count"])
	require.Equal(t, float64(1), result["updated_count"])
	require.Equal(t, float64(1), result["insufficient_count"])

	code, body = doRequest(t, router, http.MethodPost, "/v1/internal/recompute", `{"workers": 99}`, internalJobTokenHeader, testJobToken)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "INVALID_ARGUMENT", errorStatus(body))

	code, _ = doRequest(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, code)
}

func TestRouter_InternalRecomputeWithoutConfiguredToken(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, nil)
	router := NewRouter(handler, nil, RouterOptions{CORSAllowedOrigins: []string{"*"}})

	code, body := doRequest(t, router, http.MethodPost, "/v1/internal/recompute", "", internalJobTokenHeader, "anything")
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, "UNAVAILABLE", errorStatus(body))
}
