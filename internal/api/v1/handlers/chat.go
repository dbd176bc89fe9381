package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vidglobe/internal/api/middleware"
	"vidglobe/internal/api/v1/dto"
	"vidglobe/internal/api/v1/services"
)

// ChatHandler handles chat-with-video API endpoints
type ChatHandler struct {
	service services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(service services.ChatService) *ChatHandler {
	return &ChatHandler{
		service: service,
	}
}

// Ask handles POST /api/v1/chat
//
// @Summary Ask a question about a video
// @Description Answers a one-shot question grounded on the supplied transcript and summary; stateless, no pipeline involvement
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question and video context"
// @Success 200 {object} dto.ChatResponse "Generated answer"
// @Failure 422 {object} errors.APIError "Validation error"
// @Failure 502 {object} errors.APIError "Text-generation provider failure"
// @Router /chat [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Ask(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
