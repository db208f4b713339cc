package v1

import (
	"fmt"
	"io"
	"net/http"

	"go-hr-assistant/internal/delivery/http/response"
	"go-hr-assistant/internal/domain"
	"go-hr-assistant/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	assistantUC    domain.AssistantUsecase
	maxUploadBytes int64
}

func NewDraftHandler(r *gin.RouterGroup, assistantUC domain.AssistantUsecase, maxUploadBytes int64) {
	handler := &DraftHandler{assistantUC: assistantUC, maxUploadBytes: maxUploadBytes}

	r.POST("/resumes/parse", handler.ParseResume)

	draft := r.Group("/draft")
	{
		draft.POST("/save", handler.SaveDraft)
		draft.POST("/cancel", handler.CancelDraft)
		draft.POST("/edit", handler.BeginEdit)
	}
}

// ParseResume accepts a multipart PDF upload, extracts its text and asks the
// model for a profile draft. The UI blocks on this call.
func (h *DraftHandler) ParseResume(c *gin.Context) {
	file, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("A PDF file is required in the 'resume' field"))
		return
	}
	if file.Size > h.maxUploadBytes {
		c.Error(apperror.BadRequest(fmt.Sprintf("File too large (max %d MB)", h.maxUploadBytes/(1<<20))))
		return
	}

	f, err := file.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read the uploaded file"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes))
	if err != nil {
		c.Error(apperror.BadRequest("Could not read the uploaded file"))
		return
	}

	draft, err := h.assistantUC.ParseResume(c.Request.Context(), data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume parsed! Review details before saving.", draft)
}

func (h *DraftHandler) SaveDraft(c *gin.Context) {
	var form domain.DraftForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.Error(apperror.BadRequest("Invalid form payload"))
		return
	}

	saved, err := h.assistantUC.SaveDraft(c.Request.Context(), form)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("Candidate %s saved successfully", saved.Name), saved)
}

func (h *DraftHandler) CancelDraft(c *gin.Context) {
	h.assistantUC.CancelDraft(c.Request.Context())
	response.Success(c, http.StatusOK, "Draft discarded", nil)
}

func (h *DraftHandler) BeginEdit(c *gin.Context) {
	draft, err := h.assistantUC.BeginEdit(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Editing candidate", draft)
}
