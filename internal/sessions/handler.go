package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takumines/meal-finder/internal/profiles"
	"github.com/takumines/meal-finder/internal/recommendations"
	"github.com/takumines/meal-finder/internal/shared/server/middleware"
	"github.com/takumines/meal-finder/internal/shared/server/respond"
)

// Handler wires session HTTP endpoints.
type Handler struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.GET("/sessions/:sessionId", h.get)
	rg.GET("/sessions/:sessionId/questions/next", h.nextQuestion)
	rg.POST("/sessions/:sessionId/answers", h.submitAnswer)
	rg.POST("/sessions/:sessionId/complete", h.complete)
	rg.POST("/sessions/:sessionId/abandon", h.abandon)
}

type createRequest struct {
	TimeOfDay string             `json:"timeOfDay"`
	Location  *profiles.Location `json:"location"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	timeOfDay, ok := profiles.ParseTimeSlot(req.TimeOfDay)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "timeOfDay must be one of: breakfast, lunch, dinner, snack", nil)
		return
	}

	sess, err := h.Service.Create(c.Request.Context(), userID, timeOfDay, req.Location)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create session", nil)
		return
	}
	c.Set("sessionId", sess.ID)

	respond.Created(c, sessionResponse(sess))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	sess, rec, err := h.Service.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeError(c, err, "failed to fetch session")
		return
	}

	payload := sessionResponse(sess)
	payload["answers"] = answersResponse(sess.Answers)
	payload["progress"] = ProgressFor(len(sess.Answers))
	if rec != nil {
		payload["recommendation"] = recommendations.ToResponse(*rec)
	}
	respond.OK(c, payload)
}

func (h *Handler) nextQuestion(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	q, sess, err := h.Service.NextQuestion(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeError(c, err, "failed to generate question")
		return
	}

	respond.OK(c, gin.H{
		"question": q,
		"progress": ProgressFor(len(sess.Answers)),
		"session":  sessionState(sess),
	})
}

type answerRequest struct {
	QuestionID   string `json:"questionId"`
	Response     *bool  `json:"response"`
	ResponseTime int    `json:"responseTime"`
}

func (h *Handler) submitAnswer(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.QuestionID == "" || req.Response == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "questionId and response are required", nil)
		return
	}

	answer, sess, err := h.Service.SubmitAnswer(c.Request.Context(), userID, sessionID, req.QuestionID, *req.Response, req.ResponseTime)
	if err != nil {
		h.writeError(c, err, "failed to record answer")
		return
	}

	respond.Created(c, gin.H{
		"answer":   answerResponse(answer),
		"progress": ProgressFor(len(sess.Answers)),
		"session":  sessionState(sess),
	})
}

func (h *Handler) complete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	rec, err := h.Service.Complete(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeError(c, err, "failed to complete session")
		return
	}
	c.Set("recommendationId", rec.ID)
	c.Set("statusTransition", "active->completed")

	respond.OK(c, gin.H{
		"sessionId":      sessionID,
		"status":         StatusCompleted,
		"recommendation": recommendations.ToResponse(rec),
	})
}

func (h *Handler) abandon(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("sessionId")
	c.Set("sessionId", sessionID)

	sess, err := h.Service.Abandon(c.Request.Context(), userID, sessionID)
	if err != nil {
		h.writeError(c, err, "failed to abandon session")
		return
	}
	c.Set("statusTransition", "active->abandoned")

	respond.OK(c, sessionResponse(sess))
}

func (h *Handler) writeError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
	case errors.Is(err, ErrSessionNotActive):
		respond.Error(c, http.StatusBadRequest, "session_not_active", "session is not active", nil)
	case errors.Is(err, ErrSessionExhausted):
		respond.Error(c, http.StatusBadRequest, "session_exhausted", "session reached the question limit", nil)
	case errors.Is(err, ErrDuplicateAnswer):
		respond.Error(c, http.StatusConflict, "duplicate_answer", "question already answered in this session", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid session input", nil)
	case errors.Is(err, recommendations.ErrInsufficientAnswers):
		respond.Error(c, http.StatusBadRequest, "insufficient_answers", "at least 3 answers are required before completion", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallbackMsg, nil)
	}
}

func sessionResponse(s Session) gin.H {
	resp := gin.H{
		"id":          s.ID,
		"userId":      s.UserID,
		"timeOfDay":   s.TimeOfDay,
		"status":      s.Status,
		"createdAt":   s.CreatedAt,
		"completedAt": s.CompletedAt,
	}
	if s.Location != nil {
		resp["location"] = s.Location
	}
	return resp
}

func sessionState(s Session) gin.H {
	answered := len(s.Answers)
	return gin.H{
		"id":                           s.ID,
		"answeredQuestions":            answered,
		"canContinue":                  CanContinue(answered),
		"shouldGenerateRecommendation": ShouldOfferRecommendation(answered),
		"isComplete":                   IsComplete(answered),
	}
}

func answersResponse(answers []Answer) []gin.H {
	out := make([]gin.H, 0, len(answers))
	for _, a := range answers {
		out = append(out, answerResponse(a))
	}
	return out
}

func answerResponse(a Answer) gin.H {
	return gin.H{
		"id":            a.ID,
		"questionId":    a.QuestionID,
		"response":      a.Response,
		"responseTime":  a.ResponseTimeMs,
		"questionIndex": a.QuestionIndex,
		"answeredAt":    a.AnsweredAt,
	}
}
