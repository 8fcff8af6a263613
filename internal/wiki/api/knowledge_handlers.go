package api

import (
	"errors"
	"net/http"
	"strconv"

	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/service"

	"github.com/gin-gonic/gin"
)

// KnowledgeEntryRequest is the JSON body for creating or updating a
// knowledge entry. Updates replace every mutable field.
type KnowledgeEntryRequest struct {
	Question string   `json:"question" binding:"required"`
	Answer   string   `json:"answer" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
}

// CreateEntry handles creating a knowledge entry. Admin only.
func (h *Handler) CreateEntry(c *gin.Context) {
	var req KnowledgeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.service.CreateEntry(c.Request.Context(), &models.KnowledgeEntry{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		h.storageError(c, err, "failed to create knowledge entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListEntries handles listing knowledge entries newest-first.
func (h *Handler) ListEntries(c *gin.Context) {
	category := c.Query("category")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)

	entries, err := h.service.ListEntries(c.Request.Context(), category, limit)
	if err != nil {
		h.storageError(c, err, "failed to list knowledge entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateEntry handles replacing a knowledge entry. Admin only.
func (h *Handler) UpdateEntry(c *gin.Context) {
	var req KnowledgeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.service.UpdateEntry(c.Request.Context(), c.Param("id"), &models.KnowledgeEntry{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "knowledge entry not found"})
			return
		}
		h.storageError(c, err, "failed to update knowledge entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry handles removing a knowledge entry. Admin only.
func (h *Handler) DeleteEntry(c *gin.Context) {
	err := h.service.DeleteEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "knowledge entry not found"})
			return
		}
		h.storageError(c, err, "failed to delete knowledge entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "knowledge entry deleted"})
}

// SearchEntries handles full-text search over knowledge entries.
func (h *Handler) SearchEntries(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.service.SearchEntries(c.Request.Context(), req.Query, req.Category)
	if err != nil {
		h.storageError(c, err, "failed to search knowledge entries")
		return
	}

	c.JSON(http.StatusOK, entries)
}
