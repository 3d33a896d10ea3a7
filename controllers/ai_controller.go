package controllers

import (
	"context"
	"errors"
	"net/http"

	"techmart-backend/common/logger"
	"techmart-backend/services/ai"

	"github.com/gin-gonic/gin"
)

// ChatService is the AI proxy surface the controller needs.
type ChatService interface {
	CustomerChat(ctx context.Context, message, quickAction string) (string, error)
	AdminAssistant(ctx context.Context, message string, data *ai.AnalyticsData) (string, error)
}

type AIController struct {
	chat ChatService
}

func NewAIController(chat ChatService) *AIController {
	return &AIController{chat: chat}
}

type customerChatRequest struct {
	Message     string `json:"message"`
	QuickAction string `json:"quickAction"`
}

type adminAssistantRequest struct {
	Message       string            `json:"message"`
	AnalyticsData *ai.AnalyticsData `json:"analyticsData"`
}

// CustomerChat handles POST /ai/customer-chat.
func (ac *AIController) CustomerChat(c *gin.Context) {
	var req customerChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mensagem ou ação rápida é obrigatória"})
		return
	}

	if req.Message == "" && req.QuickAction == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mensagem ou ação rápida é obrigatória"})
		return
	}

	response, err := ac.chat.CustomerChat(c.Request.Context(), req.Message, req.QuickAction)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mensagem ou ação rápida é obrigatória"})
			return
		}
		// The raw upstream error stays in the logs; the client gets a
		// safe message plus a greeting fallback the widget can show.
		logger.Error(c, "customer chat failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    "Desculpe, ocorreu um erro ao processar sua mensagem. Tente novamente.",
			"fallback": "Olá! Estou aqui para ajudar. Como posso auxiliá-lo hoje? 😊",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// AdminAssistant handles POST /ai/admin-assistant.
func (ac *AIController) AdminAssistant(c *gin.Context) {
	var req adminAssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mensagem é obrigatória"})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mensagem é obrigatória"})
		return
	}

	response, err := ac.chat.AdminAssistant(c.Request.Context(), req.Message, req.AnalyticsData)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mensagem é obrigatória"})
			return
		}
		logger.Error(c, "admin assistant failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Não foi possível processar sua consulta. Tente novamente.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}
