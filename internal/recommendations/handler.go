package recommendations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/takumines/meal-finder/internal/shared/server/middleware"
	"github.com/takumines/meal-finder/internal/shared/server/respond"
)

// Handler wires recommendation HTTP endpoints.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations/:recommendationId/reaction", h.recordReaction)
	rg.GET("/recommendations/:recommendationId", h.get)
}

type reactionRequest struct {
	Reaction string `json:"reaction"`
}

func (h *Handler) recordReaction(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	recommendationID := c.Param("recommendationId")
	c.Set("recommendationId", recommendationID)

	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	reaction, ok := ParseReaction(req.Reaction)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "validation_error", "reaction must be one of: liked, disliked, saved", nil)
		return
	}

	if err := h.Repo.UpdateReaction(c.Request.Context(), userID, recommendationID, reaction); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "recommendation not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record reaction", nil)
		}
		return
	}

	respond.OK(c, gin.H{
		"id":       recommendationID,
		"reaction": reaction,
	})
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	recommendationID := c.Param("recommendationId")
	c.Set("recommendationId", recommendationID)

	rec, err := h.Repo.GetByID(c.Request.Context(), userID, recommendationID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "recommendation not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch recommendation", nil)
		}
		return
	}

	respond.OK(c, ToResponse(rec))
}

// ToResponse maps a stored recommendation to its API shape.
func ToResponse(rec MealRecommendation) gin.H {
	resp := gin.H{
		"id":                   rec.ID,
		"sessionId":            rec.SessionID,
		"name":                 rec.Name,
		"description":          rec.Description,
		"cuisine_genre":        rec.CuisineGenre,
		"spice_level":          rec.SpiceLevel,
		"estimated_price":      rec.EstimatedPrice,
		"cooking_time_minutes": rec.CookingTimeMinutes,
		"ingredients":          rec.Ingredients,
		"instructions":         rec.Instructions,
		"meal_source":          rec.MealSource,
		"confidence_score":     rec.ConfidenceScore,
		"reasoning":            rec.Reasoning,
		"created_at":           rec.CreatedAt,
	}
	if rec.UserReaction != nil {
		resp["user_reaction"] = *rec.UserReaction
	}
	return resp
}
