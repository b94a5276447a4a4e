package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/ai"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

// ======================================================
// HANDLER (análises com IA)
// ======================================================

type InsightsHandler struct {
	ai *ai.Service
}

func NewInsightsHandler(aiService *ai.Service) *InsightsHandler {
	return &InsightsHandler{ai: aiService}
}

func (h *InsightsHandler) enabled(c *gin.Context) bool {
	if h.ai == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ai_disabled"})
		return false
	}
	return true
}

// WeeklyCoach analisa a semana da barbearia. Uma análise por semana
// ISO por usuário; repetir a mesma semana devolve o cache.
func (h *InsightsHandler) WeeklyCoach(c *gin.Context) {
	if !h.enabled(c) {
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	var in ai.WeeklyCoachInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos para análise.")
		return
	}

	result, err := h.ai.WeeklyCoach(c.Request.Context(), userID, in)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok && code == "weekly_limit" {
			httperr.TooManyRequests(c, code, "Você já usou a análise desta semana.")
			return
		}
		httperr.Internal(c, "ai_failed", "Erro ao gerar análise.")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *InsightsHandler) ServicePricing(c *gin.Context) {
	if !h.enabled(c) {
		return
	}

	var in ai.ServicePricingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos para análise.")
		return
	}

	result, err := h.ai.ServicePricing(c.Request.Context(), in)
	if err != nil {
		httperr.Internal(c, "ai_failed", "Erro ao gerar análise de preço.")
		return
	}

	c.JSON(http.StatusOK, result)
}
