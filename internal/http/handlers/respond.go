package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error responses are a flat {"error": "<message>"} object; the web client
// reads exactly that shape.

func RespondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}

func RespondBadRequest(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusBadRequest, message)
}

func RespondUnauthorized(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusUnauthorized, message)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, message)
}

// RespondInternal logs the real failure server-side and hands the client a
// generic message only.
func RespondInternal(ctx *gin.Context, err error) {
	reqID, _ := ctx.Get("request_id")

	slog.Default().ErrorContext(ctx.Request.Context(), "internal error",
		"err", err,
		"path", ctx.Request.URL.Path,
		"request_id", reqID,
	)

	RespondError(ctx, http.StatusInternalServerError, "Internal server error")
}
