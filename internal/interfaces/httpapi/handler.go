package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
	"github.com/riskibarqy/golf-tracker/internal/usecase"
)

type Handler struct {
	handicapService   *usecase.HandicapService
	statisticsService *usecase.StatisticsService
	profileService    *usecase.ProfileService
	recomputeService  *usecase.RecomputeService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	handicapService *usecase.HandicapService,
	statisticsService *usecase.StatisticsService,
	profileService *usecase.ProfileService,
	recomputeService *usecase.RecomputeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		handicapService:   handicapService,
		statisticsService: statisticsService,
		profileService:    profileService,
		recomputeService:  recomputeService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON rejects unknown fields. An empty body decodes to the zero value when
// allowEmpty is set.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	if r.Body == nil || r.ContentLength == 0 {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
	}

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// queryInt returns 0 when the parameter is absent.
func queryInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}

	return value, nil
}
