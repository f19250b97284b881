package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fyyur/internal/http-api/dto"
	"fyyur/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	svc     service.ShowService
	log     *slog.Logger
	timeout time.Duration
}

func NewShowHandler(svc service.ShowService, log *slog.Logger, timeout time.Duration) *ShowHandler {
	return &ShowHandler{svc: svc, log: log, timeout: timeout}
}

func (h *ShowHandler) RegisterRoutes(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.POST("/create", guarded(writeGuards, h.Create)...)
	rg.DELETE("/:id", guarded(writeGuards, h.Delete)...)
}

// List returns upcoming shows, earliest first.
func (h *ShowHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	shows, err := h.svc.ListUpcoming(ctx)
	if err != nil {
		respondError(c, h.log, err, "show", "An error occurred. Shows could not be loaded.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"shows": shows})
}

func (h *ShowHandler) Create(c *gin.Context) {
	var in dto.ShowForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model, err := in.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		respondError(c, h.log, err, "show", "An error occurred. Show could not be listed.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Show was successfully listed!", "show": model})
}

func (h *ShowHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, h.log, err, "show", fmt.Sprintf("An error occurred. Show %d could not be deleted.", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Show %d was successfully deleted.", id)})
}
