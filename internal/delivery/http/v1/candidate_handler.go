package v1

import (
	"net/http"

	"go-hr-assistant/internal/delivery/http/response"
	"go-hr-assistant/internal/domain"
	"go-hr-assistant/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	assistantUC domain.AssistantUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, assistantUC domain.AssistantUsecase) {
	handler := &CandidateHandler{assistantUC: assistantUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.ListNames)
		candidates.POST("/select", handler.Select)
		candidates.GET("/current", handler.Current)
		candidates.DELETE("/current", handler.DeleteCurrent)
	}

	r.GET("/session", handler.Session)
}

func (h *CandidateHandler) ListNames(c *gin.Context) {
	names, err := h.assistantUC.ListNames(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate names", names)
}

type selectRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CandidateHandler) Select(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Candidate name is required"))
		return
	}

	profile, err := h.assistantUC.Select(c.Request.Context(), req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate selected", profile)
}

func (h *CandidateHandler) Current(c *gin.Context) {
	profile, err := h.assistantUC.Current(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

func (h *CandidateHandler) DeleteCurrent(c *gin.Context) {
	if err := h.assistantUC.DeleteCurrent(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate deleted successfully", nil)
}

func (h *CandidateHandler) Session(c *gin.Context) {
	view := h.assistantUC.Session(c.Request.Context())
	response.Success(c, http.StatusOK, "Session state", view)
}
