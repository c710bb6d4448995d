package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/mindwell-backend/internal/chat"
)

// ChatRequest is the payload for POST /api/chat. Conversation is the prior
// role/content exchange history, oldest first; only the trailing entries are
// forwarded to the completion API.
type ChatRequest struct {
	UserID       uint           `json:"user_id"`
	Message      string         `json:"message"`
	Emotion      string         `json:"emotion"`
	Conversation []chat.Message `json:"conversation"`
}

// ChatResponse carries the reply. IsFallback is true when the reply came
// from the canned per-emotion script rather than the completion API.
type ChatResponse struct {
	Response
	Reply      string `json:"reply"`
	IsFallback bool   `json:"is_fallback"`
}

// @Summary Chat with the support assistant
// @Description Send a message with an optional emotion and conversation history. When the completion API is unreachable or no credential is configured, the reply falls back to the emotion's canned script and is_fallback is true.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat payload"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} Response "Missing fields"
// @Router /api/chat [post]
// ChatFiber handles POST /api/chat for Fiber.
func (h *APIHandler) ChatFiber(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Request must be JSON"})
	}

	reply, err := h.Chat.Respond(c.Context(), req.UserID, req.Message, req.Emotion, req.Conversation)
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusOK).JSON(ChatResponse{
		Response:   Response{Success: true},
		Reply:      reply.Reply,
		IsFallback: reply.IsFallback,
	})
}

// ChatGin handles POST /api/chat for Gin.
func (h *APIHandler) ChatGin(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Request must be JSON"})
		return
	}

	reply, err := h.Chat.Respond(c.Request.Context(), req.UserID, req.Message, req.Emotion, req.Conversation)
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, ChatResponse{
		Response:   Response{Success: true},
		Reply:      reply.Reply,
		IsFallback: reply.IsFallback,
	})
}
