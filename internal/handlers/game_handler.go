package handlers

import (
	"context"
	"errors"
	"net/http"

	"mathgame-service/internal/game"
	"mathgame-service/internal/store"

	"github.com/gin-gonic/gin"
)

// GameHandler adapts the engine to HTTP. Each handler stashes the session id
// on the gin context so route wrappers (event publishing) can tag their
// payloads with it.
type GameHandler struct {
	Engine *game.Engine
}

func NewGameHandler(e *game.Engine) *GameHandler {
	return &GameHandler{Engine: e}
}

// StartGame creates a new session with a fresh set of questions.
func (h *GameHandler) StartGame(c *gin.Context) {
	session, err := h.Engine.StartSession(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to start game",
			"details": err.Error(),
		})
		return
	}

	c.Set("session_id", session.ID)
	c.JSON(http.StatusOK, gin.H{
		"session_id":      session.ID,
		"total_questions": game.TotalQuestions,
	})
}

// GetQuestion issues the current question and starts its timer.
func (h *GameHandler) GetQuestion(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	c.Set("session_id", req.SessionID)

	question, err := h.Engine.NextQuestion(context.Background(), req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// SubmitAnswer evaluates the answer to the pending question.
func (h *GameHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		Answer    any    `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	c.Set("session_id", req.SessionID)

	result, err := h.Engine.SubmitAnswer(context.Background(), req.SessionID, req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetResults returns the score summary; partial results are allowed while
// the game is still running.
func (h *GameHandler) GetResults(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	c.Set("session_id", req.SessionID)

	results, err := h.Engine.GetResults(context.Background(), req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// respondError maps engine and store errors onto client-visible statuses:
// unknown session is a 404, everything the caller did wrong is a 400.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Invalid session",
			"code":  "SESSION_NOT_FOUND",
		})
	case errors.Is(err, game.ErrGameComplete):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Game completed",
			"code":  "GAME_COMPLETE",
		})
	case errors.Is(err, game.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer",
			"code":    "INVALID_INPUT",
			"details": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal error",
			"details": err.Error(),
		})
	}
}
