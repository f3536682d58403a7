package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tienda/internal/chatbot"
)

type ChatbotHandler struct{}

func NewChatbotHandler() *ChatbotHandler {
	return &ChatbotHandler{}
}

func (h *ChatbotHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chatbot/ask", h.ask)
}

type chatbotRequest struct {
	Message string `json:"message"`
}

type chatbotResponse struct {
	Reply        string   `json:"reply"`
	Intent       string   `json:"intent"`
	QuickReplies []string `json:"quick"`
}

func (h *ChatbotHandler) ask(c echo.Context) error {
	var req chatbotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	intent, reply := chatbot.Answer(req.Message)
	return c.JSON(http.StatusOK, chatbotResponse{
		Reply:        reply,
		Intent:       intent,
		QuickReplies: chatbot.QuickReplies,
	})
}
