// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"fixtrack/internal/delivery/http/response"
	"fixtrack/internal/util"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service liveness plus a few runtime figures useful
// when eyeballing a deployment.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
	}
}

// Check is a simple handler to check if the service is up.
func (h *HealthHandler) Check(c echo.Context) error {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return response.Success(c, http.StatusOK, map[string]string{
		"status":     "ok",
		"uptime":     util.FormatDuration(time.Since(h.startedAt)),
		"heap_alloc": util.FormatBytes(int64(memStats.HeapAlloc)),
		"goroutines": strconv.Itoa(runtime.NumGoroutine()),
	}, "Service is healthy")
}
