package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/astrolaunch/launchpad/internal/cache"
	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/domain/rocket"
	"github.com/gin-gonic/gin"
)

const rocketsCacheKey = "lists:rockets"

type RocketsStore interface {
	List(ctx context.Context) ([]rocket.Rocket, error)
	Create(ctx context.Context, req rocket.CreateRocketRequest) (rocket.Rocket, error)
}

type RocketsHandler struct {
	repo  RocketsStore
	cache cache.Cache
}

func NewRocketsHandler(repo RocketsStore, c cache.Cache) *RocketsHandler {
	return &RocketsHandler{repo: repo, cache: c}
}

// ListRockets returns the full collection, newest first, as a bare array.
func (h *RocketsHandler) ListRockets(ctx *gin.Context) {
	if body, ok := h.cache.Get(ctx.Request.Context(), rocketsCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	rockets, err := h.repo.List(cctx)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	if body, err := json.Marshal(rockets); err == nil {
		h.cache.Set(ctx.Request.Context(), rocketsCacheKey, body)
	}

	ctx.JSON(http.StatusOK, rockets)
}

func (h *RocketsHandler) CreateRocket(ctx *gin.Context) {
	var req rocket.CreateRocketRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	rk, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	h.cache.Delete(ctx.Request.Context(), rocketsCacheKey)

	ctx.JSON(http.StatusCreated, rk)
}
