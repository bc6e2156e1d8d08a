package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/skills-assessment/internal/response"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports process liveness and the state of the result store.
type HealthHandler struct {
	rdb         *redis.Client // nil when results are kept in memory
	resultStore string
	startTime   time.Time
	log         zerolog.Logger
}

func NewHealthHandler(rdb *redis.Client, resultStore string, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		rdb:         rdb,
		resultStore: resultStore,
		startTime:   time.Now(),
		log:         log.With().Str("component", "health_handler").Logger(),
	}
}

type healthStatus struct {
	Status      string `json:"status"`
	ResultStore string `json:"result_store"`
	Uptime      string `json:"uptime"`
	Goroutines  int    `json:"goroutines"`
	GoVersion   string `json:"go_version"`
}

// Health godoc
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := healthStatus{
		Status:      "ok",
		ResultStore: h.resultStore,
		Uptime:      time.Since(h.startTime).Truncate(time.Second).String(),
		Goroutines:  runtime.NumGoroutine(),
		GoVersion:   runtime.Version(),
	}

	if h.rdb != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.log.Warn().Err(err).Msg("Result store unreachable")
			status.Status = "degraded"
			response.Success(c, http.StatusServiceUnavailable, status)
			return
		}
	}

	response.Success(c, http.StatusOK, status)
}
