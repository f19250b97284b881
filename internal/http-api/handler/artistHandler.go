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

type ArtistHandler struct {
	svc     service.ArtistService
	log     *slog.Logger
	timeout time.Duration
}

func NewArtistHandler(svc service.ArtistService, log *slog.Logger, timeout time.Duration) *ArtistHandler {
	return &ArtistHandler{svc: svc, log: log, timeout: timeout}
}

// RegisterRoutes mounts the artist routes. writeGuards run before every
// route that changes data.
func (h *ArtistHandler) RegisterRoutes(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.POST("/search", h.Search)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/edit", h.EditForm)

	rg.POST("/create", guarded(writeGuards, h.Create)...)
	rg.POST("/:id/edit", guarded(writeGuards, h.Update)...)
	rg.DELETE("/:id", guarded(writeGuards, h.Delete)...)
	rg.DELETE("/:id/delete", guarded(writeGuards, h.Delete)...)
}

func (h *ArtistHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	artists, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, h.log, err, "artist", "An error occurred. Artists could not be loaded.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

func (h *ArtistHandler) Search(c *gin.Context) {
	var in dto.SearchForm
	if err := bindSearch(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	results, err := h.svc.Search(ctx, in.SearchTerm)
	if err != nil {
		respondError(c, h.log, err, "artist", "An error occurred. Search failed.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"search_term": in.SearchTerm, "results": results})
}

func (h *ArtistHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	d, err := h.svc.GetDetail(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "artist", "An error occurred. Artist could not be loaded.")
		return
	}
	c.JSON(http.StatusOK, d)
}

// EditForm returns the current values for the edit form.
func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	a, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "artist", "An error occurred. Artist could not be loaded.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": a.ID, "form": dto.ArtistFormFromModel(*a)})
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var in dto.ArtistForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	model := in.ToModel()
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		respondError(c, h.log, err, "artist", fmt.Sprintf("An error occurred. Artist %s could not be listed.", in.Name))
		return
	}

	msg := fmt.Sprintf("Artist %s was successfully listed!", model.Name)
	created, err := h.svc.GetDetail(ctx, model.ID)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"message": msg, "artist": model})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msg, "artist": created})
}

func (h *ArtistHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in dto.ArtistForm
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	a, err := h.svc.Update(ctx, id, in)
	if err != nil {
		respondError(c, h.log, err, "artist", fmt.Sprintf("An error occurred. Artist %s could not be updated.", in.Name))
		return
	}

	msg := fmt.Sprintf("Artist %s was successfully updated!", a.Name)
	updated, err := h.svc.GetDetail(ctx, id)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": msg, "artist": a})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "artist": updated})
}

func (h *ArtistHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	a, err := h.svc.Delete(ctx, id)
	if err != nil {
		respondError(c, h.log, err, "artist", fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Artist %s was successfully deleted.", a.Name),
	})
}
