package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/astrolaunch/launchpad/internal/cache"
	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/domain/schedule"
	"github.com/gin-gonic/gin"
)

const schedulesCacheKey = "lists:schedules"

type SchedulesStore interface {
	List(ctx context.Context) ([]schedule.Schedule, error)
	Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.Schedule, error)
}

type SchedulesHandler struct {
	repo  SchedulesStore
	cache cache.Cache
}

func NewSchedulesHandler(repo SchedulesStore, c cache.Cache) *SchedulesHandler {
	return &SchedulesHandler{repo: repo, cache: c}
}

// ListSchedules returns upcoming launches soonest-first.
func (h *SchedulesHandler) ListSchedules(ctx *gin.Context) {
	if body, ok := h.cache.Get(ctx.Request.Context(), schedulesCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	schedules, err := h.repo.List(cctx)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	if body, err := json.Marshal(schedules); err == nil {
		h.cache.Set(ctx.Request.Context(), schedulesCacheKey, body)
	}

	ctx.JSON(http.StatusOK, schedules)
}

func (h *SchedulesHandler) CreateSchedule(ctx *gin.Context) {
	var req schedule.CreateScheduleRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	s, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	h.cache.Delete(ctx.Request.Context(), schedulesCacheKey)

	ctx.JSON(http.StatusCreated, s)
}
