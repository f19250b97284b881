package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"fyyur/internal/http-api/dto"
	"fyyur/internal/http-api/middleware"
	"fyyur/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code. Validation and
// has-shows messages are built by the service and safe to show; anything
// unexpected is logged and replaced by the failure message.
func respondError(c *gin.Context, log *slog.Logger, err error, entity, failure string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrHasShows):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidReference):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "artist or venue does not exist"})
	default:
		log.Error("request_failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": failure})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// guarded appends h to a copy of the guard chain.
func guarded(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(slices.Clip(guards), h)
}

// bindSearch treats an empty JSON body as an empty search term.
func bindSearch(c *gin.Context, in *dto.SearchForm) error {
	if err := c.ShouldBind(in); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
