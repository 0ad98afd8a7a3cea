package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/astrolaunch/launchpad/internal/cache"
	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/domain/mission"
	"github.com/gin-gonic/gin"
)

const missionsCacheKey = "lists:missions"

type MissionsStore interface {
	List(ctx context.Context) ([]mission.Mission, error)
	Create(ctx context.Context, req mission.CreateMissionRequest) (mission.Mission, error)
}

type MissionsHandler struct {
	repo  MissionsStore
	cache cache.Cache
}

func NewMissionsHandler(repo MissionsStore, c cache.Cache) *MissionsHandler {
	return &MissionsHandler{repo: repo, cache: c}
}

func (h *MissionsHandler) ListMissions(ctx *gin.Context) {
	if body, ok := h.cache.Get(ctx.Request.Context(), missionsCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	missions, err := h.repo.List(cctx)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	if body, err := json.Marshal(missions); err == nil {
		h.cache.Set(ctx.Request.Context(), missionsCacheKey, body)
	}

	ctx.JSON(http.StatusOK, missions)
}

func (h *MissionsHandler) CreateMission(ctx *gin.Context) {
	var req mission.CreateMissionRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	m, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	h.cache.Delete(ctx.Request.Context(), missionsCacheKey)

	ctx.JSON(http.StatusCreated, m)
}
