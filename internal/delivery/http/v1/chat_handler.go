package v1

import (
	"net/http"

	"go-career-mentor-backend/internal/delivery/http/middleware"
	"go-career-mentor-backend/internal/delivery/http/response"
	"go-career-mentor-backend/internal/domain"
	"go-career-mentor-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

func NewChatHandler(protected *gin.RouterGroup, chatUC domain.ChatUsecase, aiLimit gin.HandlerFunc) {
	handler := &ChatHandler{chatUC: chatUC}

	chat := protected.Group("/chat")
	{
		chat.POST("", aiLimit, handler.Send)
		chat.GET("/sessions", handler.ListSessions)
		chat.GET("/sessions/:session_id/messages", handler.ListMessages)
	}
}

type ChatRequest struct {
	Message   string `json:"message" binding:"required,max=4000"`
	SessionID string `json:"session_id" binding:"omitempty,uuid"`
}

type chatPayload struct {
	Reply     *domain.ChatMessage `json:"reply"`
	SessionID string              `json:"session_id"`
}

// Send godoc
// @Summary      Send Chat Message
// @Description  Sends a message to the AI career mentor. Omit session_id to start a new conversation.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat  body      ChatRequest  true  "Message"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /chat [post]
// @Security     BearerAuth
func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reply, sessionID, err := h.chatUC.SendMessage(c.Request.Context(), userID, req.SessionID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", chatPayload{Reply: reply, SessionID: sessionID})
}

// ListSessions godoc
// @Summary      List Chat Sessions
// @Tags         chat
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /chat/sessions [get]
// @Security     BearerAuth
func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	sessions, err := h.chatUC.ListSessions(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", sessions)
}

// ListMessages godoc
// @Summary      List Session Messages
// @Tags         chat
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /chat/sessions/{session_id}/messages [get]
// @Security     BearerAuth
func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	messages, err := h.chatUC.ListMessages(c.Request.Context(), userID, c.Param("session_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", messages)
}
