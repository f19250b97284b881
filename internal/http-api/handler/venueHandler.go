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

type VenueHandler struct {
	svc     service.VenueService
	log     *slog.Logger
	timeout time.Duration
}

func NewVenueHandler(svc service.VenueService, log *slog.Logger, timeout time.Duration) *VenueHandler {
	return &VenueHandler{svc: svc, log: log, timeout: timeout}
}

// RegisterRoutes mounts the venue routes. writeGuards run before every
// route that changes data.
func (h *VenueHandler) RegisterRoutes(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.POST("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/edit", h.EditForm)

	rg.POST("/create", guarded(writeGuards, h.Create)...)
	rg.POST("/:id/edit", guarded(writeGuards, h.Update)...)
	rg.DELETE("/:id", guarded(writeGuards, h.Delete)...)
	rg.DELETE("/:id/delete", guarded(writeGuards, h.Delete)...)
}

func (h *VenueHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	areas, err := h.svc.ListAreas(ctx)
	if err != nil {
		respondError(c, h.log, err, "venue", "An error occurred. Venues could not be loaded.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

func (h *VenueHandler) Search(c *gin.Context) {
	var in dto.SearchForm
	if err := bindSearch(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	results, err := h.svc.Search(ctx, in.SearchTerm)
	if err != nil {
		respondError(c, h.log, err, "venue", "An error occurred. Search failed.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"search_term": in.SearchTerm, "results": results})
}

func (h *VenueHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	d, err := h.svc.GetDetail(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "venue", "An error occurred. Venue could not be loaded.")
		return
	}
	c.JSON(http.StatusOK, d)
}

// EditForm returns the current values for the edit form.
func (h *VenueHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	v, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "venue", "An error occurred. Venue could not be loaded.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": v.ID, "form": dto.VenueFormFromModel(*v)})
}

func (h *VenueHandler) Create(c *gin.Context) {
	var in dto.VenueForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		respondError(c, h.log, err, "venue", fmt.Sprintf("An error occurred. Venue %s could not be listed.", in.Name))
		return
	}

	msg := fmt.Sprintf("Venue %s was successfully listed!", model.Name)
	created, err := h.svc.GetDetail(ctx, model.ID)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"message": msg, "venue": model})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg, "venue": created})
}

func (h *VenueHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.VenueForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	v, err := h.svc.Update(ctx, id, in)
	if err != nil {
		respondError(c, h.log, err, "venue", fmt.Sprintf("An error occurred. Venue %s could not be updated.", in.Name))
		return
	}

	msg := fmt.Sprintf("Venue %s was successfully updated!", v.Name)
	updated, err := h.svc.GetDetail(ctx, id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msg, "venue": v})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "venue": updated})
}

func (h *VenueHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	v, err := h.svc.Delete(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "venue", fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Venue %s was successfully deleted.", v.Name),
	})
}
