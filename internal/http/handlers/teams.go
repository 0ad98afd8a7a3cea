package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/astrolaunch/launchpad/internal/cache"
	"github.com/astrolaunch/launchpad/internal/config"
	"github.com/astrolaunch/launchpad/internal/domain/team"
	"github.com/gin-gonic/gin"
)

const teamsCacheKey = "lists:teams"

type TeamsStore interface {
	List(ctx context.Context) ([]team.Member, error)
	Create(ctx context.Context, req team.CreateMemberRequest) (team.Member, error)
}

type TeamsHandler struct {
	repo  TeamsStore
	cache cache.Cache
}

func NewTeamsHandler(repo TeamsStore, c cache.Cache) *TeamsHandler {
	return &TeamsHandler{repo: repo, cache: c}
}

func (h *TeamsHandler) ListTeamMembers(ctx *gin.Context) {
	if body, ok := h.cache.Get(ctx.Request.Context(), teamsCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	members, err := h.repo.List(cctx)

	if err != nil {
		RespondInternal(ctx, err)
		return
	}

	if body, err := json.Marshal(members); err == nil {
		h.cache.Set(ctx.Request.Context(), teamsCacheKey, body)
	}

	ctx.JSON(http.StatusOK, members)
}

func (h *TeamsHandler) CreateTeamMember(ctx *gin.Context) {
	var req team.CreateMemberRequest

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

	h.cache.Delete(ctx.Request.Context(), teamsCacheKey)

	ctx.JSON(http.StatusCreated, m)
}
