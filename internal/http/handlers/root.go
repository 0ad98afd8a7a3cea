package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// liveness message the web client pings on load
func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "AstroLaunch API"})
}
