package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/statside/nfl-middleware/internal/platform/logging"
	"github.com/statside/nfl-middleware/internal/usecase"
)

type Handler struct {
	syncService     *usecase.FeedSyncService
	standingService *usecase.StandingService
	rosterService   *usecase.RosterService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	syncService *usecase.FeedSyncService,
	standingService *usecase.StandingService,
	rosterService *usecase.RosterService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	v := validator.New()
	_ = v.RegisterValidation("seasonkey", func(fl validator.FieldLevel) bool {
		return usecase.ValidateSeasonKey(fl.Field().String()) == nil
	})

	return &Handler{
		syncService:     syncService,
		standingService: standingService,
		rosterService:   rosterService,
		logger:          logger,
		validator:       v,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
