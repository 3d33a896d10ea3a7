package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"techmart-backend/common/logger"
	"techmart-backend/services/ai"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock Service ---

type MockChatService struct{ mock.Mock }

func (m *MockChatService) CustomerChat(ctx context.Context, message, quickAction string) (string, error) {
	args := m.Called(ctx, message, quickAction)
	return args.String(0), args.Error(1)
}
func (m *MockChatService) AdminAssistant(ctx context.Context, message string, data *ai.AnalyticsData) (string, error) {
	args := m.Called(ctx, message, data)
	return args.String(0), args.Error(1)
}

func postJSON(router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// --- Tests ---

func TestCustomerChatController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("test")

	t.Run("Success - 200 OK", func(t *testing.T) {
		mockService := new(MockChatService)
		mockService.On("CustomerChat", mock.Anything, "qual o prazo de entrega?", "").
			Return("O prazo é de 5-10 dias úteis. 😊", nil).Once()

		router := gin.New()
		router.POST("/ai/customer-chat", NewAIController(mockService).CustomerChat)

		recorder := postJSON(router, "/ai/customer-chat", `{"message": "qual o prazo de entrega?"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "5-10 dias úteis")
		mockService.AssertExpectations(t)
	})

	t.Run("Quick Action Is Forwarded", func(t *testing.T) {
		mockService := new(MockChatService)
		mockService.On("CustomerChat", mock.Anything, "", "RETURN_POLICY").
			Return("canned reply", nil).Once()

		router := gin.New()
		router.POST("/ai/customer-chat", NewAIController(mockService).CustomerChat)

		recorder := postJSON(router, "/ai/customer-chat", `{"quickAction": "RETURN_POLICY"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Neither Message Nor Action - 400", func(t *testing.T) {
		mockService := new(MockChatService)
		router := gin.New()
		router.POST("/ai/customer-chat", NewAIController(mockService).CustomerChat)

		recorder := postJSON(router, "/ai/customer-chat", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Mensagem ou ação rápida é obrigatória")
		mockService.AssertNotCalled(t, "CustomerChat", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upstream Failure - 500 With Fallback", func(t *testing.T) {
		mockService := new(MockChatService)
		mockService.On("CustomerChat", mock.Anything, "oi", "").
			Return("", errors.New("quota exceeded")).Once()

		router := gin.New()
		router.POST("/ai/customer-chat", NewAIController(mockService).CustomerChat)

		recorder := postJSON(router, "/ai/customer-chat", `{"message": "oi"}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, "Desculpe, ocorreu um erro ao processar sua mensagem. Tente novamente.")
		assert.Contains(t, body, "Olá! Estou aqui para ajudar. Como posso auxiliá-lo hoje? 😊")
		// The raw upstream error never reaches the client.
		assert.NotContains(t, body, "quota exceeded")
	})
}

func TestAdminAssistantController(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("test")

	t.Run("Success With Analytics - 200 OK", func(t *testing.T) {
		mockService := new(MockChatService)
		mockService.On("AdminAssistant", mock.Anything, "como estão as vendas?", mock.MatchedBy(func(d *ai.AnalyticsData) bool {
			return d != nil && d.TotalOrders == 10
		})).Return("análise pronta", nil).Once()

		router := gin.New()
		router.POST("/ai/admin-assistant", NewAIController(mockService).AdminAssistant)

		payload := `{"message": "como estão as vendas?", "analyticsData": {"totalRevenue": 5000, "totalOrders": 10}}`
		recorder := postJSON(router, "/ai/admin-assistant", payload)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "análise pronta")
		mockService.AssertExpectations(t)
	})

	t.Run("Missing Message - 400", func(t *testing.T) {
		mockService := new(MockChatService)
		router := gin.New()
		router.POST("/ai/admin-assistant", NewAIController(mockService).AdminAssistant)

		recorder := postJSON(router, "/ai/admin-assistant", `{}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Mensagem é obrigatória")
	})

	t.Run("Upstream Failure - 500", func(t *testing.T) {
		mockService := new(MockChatService)
		mockService.On("AdminAssistant", mock.Anything, "resumo", (*ai.AnalyticsData)(nil)).
			Return("", errors.New("backend down")).Once()

		router := gin.New()
		router.POST("/ai/admin-assistant", NewAIController(mockService).AdminAssistant)

		recorder := postJSON(router, "/ai/admin-assistant", `{"message": "resumo"}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Não foi possível processar sua consulta. Tente novamente.")
	})
}
