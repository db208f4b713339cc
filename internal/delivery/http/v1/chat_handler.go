package v1

import (
	"net/http"

	"go-hr-assistant/internal/delivery/http/response"
	"go-hr-assistant/internal/domain"
	"go-hr-assistant/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewChatHandler(r *gin.RouterGroup, assistantUC domain.AssistantUsecase) {
	handler := &ChatHandler{assistantUC: assistantUC}

	chat := r.Group("/chat")
	{
		chat.GET("", handler.Transcript)
		chat.POST("", handler.Send)
	}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type chatReply struct {
	Reply      string            `json:"reply"`
	Transcript []domain.ChatTurn `json:"transcript"`
}

// Send asks the model about the current candidate. The call blocks for the
// duration of the remote request; no concurrent input is accepted meanwhile.
func (h *ChatHandler) Send(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Message is required"))
		return
	}

	reply, err := h.assistantUC.Chat(c.Request.Context(), req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Assistant reply", chatReply{
		Reply:      reply,
		Transcript: h.assistantUC.Transcript(c.Request.Context()),
	})
}

func (h *ChatHandler) Transcript(c *gin.Context) {
	response.Success(c, http.StatusOK, "Chat transcript", h.assistantUC.Transcript(c.Request.Context()))
}
