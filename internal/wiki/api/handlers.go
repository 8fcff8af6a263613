package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/auth"
	"Boettcher_Wiki/internal/wiki/service"
	"Boettcher_Wiki/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handler bundles the dependencies of all API endpoints.
type Handler struct {
	service     *service.Service
	auth        *auth.Authenticator
	logger      *logger.Logger
	serviceName string
	healthCheck func(ctx context.Context) error
}

// NewHandler creates a new Handler instance. healthCheck probes the storage
// backend for the health endpoint and may be nil.
func NewHandler(s *service.Service, a *auth.Authenticator, l *logger.Logger, serviceName string, healthCheck func(ctx context.Context) error) *Handler {
	return &Handler{
		service:     s,
		auth:        a,
		logger:      l,
		serviceName: serviceName,
		healthCheck: healthCheck,
	}
}

// HealthCheck reports service liveness. The database field degrades to
// "error" when the storage probe fails, the status code stays 200.
func (h *Handler) HealthCheck(c *gin.Context) {
	database := "connected"
	if h.healthCheck != nil {
		if err := h.healthCheck(c.Request.Context()); err != nil {
			database = "error"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  h.serviceName,
		"database": database,
	})
}

// --- Question Handlers ---

// CreateQuestionRequest is the JSON body for submitting a question.
type CreateQuestionRequest struct {
	QuestionText string   `json:"question_text" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Author       string   `json:"author" binding:"required"`
	Tags         []string `json:"tags"`
}

// CreateQuestion handles the submission of a new question.
func (h *Handler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.service.CreateQuestion(c.Request.Context(), &models.Question{
		QuestionText: req.QuestionText,
		Category:     req.Category,
		Author:       req.Author,
		Tags:         req.Tags,
	})
	if err != nil {
		h.storageError(c, err, "failed to create question")
		return
	}

	c.JSON(http.StatusOK, question)
}

// ListQuestions handles listing questions with their answers, newest-first.
func (h *Handler) ListQuestions(c *gin.Context) {
	category := c.Query("category")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)

	questions, err := h.service.ListQuestions(c.Request.Context(), category, limit)
	if err != nil {
		h.storageError(c, err, "failed to list questions")
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateAnswerRequest is the JSON body for answering a question.
type CreateAnswerRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
	Author     string `json:"author" binding:"required"`
}

// CreateAnswer handles attaching an answer to a question.
func (h *Handler) CreateAnswer(c *gin.Context) {
	questionID := c.Param("id")

	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.service.CreateAnswer(c.Request.Context(), questionID, &models.Answer{
		AnswerText: req.AnswerText,
		Author:     req.Author,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
		case errors.Is(err, service.ErrAnswerExists):
			c.JSON(http.StatusConflict, gin.H{"error": "answer already exists"})
		default:
			h.storageError(c, err, "failed to create answer")
		}
		return
	}

	c.JSON(http.StatusOK, answer)
}

// SearchRequest is the JSON body of the search endpoints. An empty query
// matches everything, so only the category narrows the result.
type SearchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// SearchQuestions handles full-text search over questions and tags.
func (h *Handler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.service.Search(c.Request.Context(), req.Query, req.Category)
	if err != nil {
		h.storageError(c, err, "failed to search questions")
		return
	}

	c.JSON(http.StatusOK, results)
}

// ListCategories handles listing the categories in use.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		h.storageError(c, err, "failed to list categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Stats handles the wiki counters endpoint.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.storageError(c, err, "failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// DeleteQuestion handles removing a question and its answer.
func (h *Handler) DeleteQuestion(c *gin.Context) {
	err := h.service.DeleteQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "question not found"})
			return
		}
		h.storageError(c, err, "failed to delete question")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}

// --- Admin Handlers ---

// LoginRequest is the JSON body of the admin login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles admin authentication and token issuance.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"username":     req.Username,
	})
}

// VerifyToken confirms that the presented bearer token is valid. The auth
// middleware has already rejected anything invalid by the time this runs.
func (h *Handler) VerifyToken(c *gin.Context) {
	username, _ := c.Get(contextKeyUsername)
	c.JSON(http.StatusOK, gin.H{"valid": true, "username": username})
}

// storageError logs the underlying failure and answers with a generic
// internal error, never the raw storage message.
func (h *Handler) storageError(c *gin.Context, err error, message string) {
	h.logger.WithError(models.ErrorInfo{
		Message:    err.Error(),
		Type:       "storage_error",
		StatusCode: http.StatusInternalServerError,
	}).Error(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
