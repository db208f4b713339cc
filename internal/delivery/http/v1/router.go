package v1

import (
	"net/http"

	"go-hr-assistant/config"
	"go-hr-assistant/internal/delivery/http/middleware"
	"go-hr-assistant/internal/delivery/http/response"
	"go-hr-assistant/internal/delivery/http/site"
	"go-hr-assistant/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AssistantUC domain.AssistantUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewDraftHandler(v1, deps.AssistantUC, deps.Config.MaxUploadMB<<20)
	NewCandidateHandler(v1, deps.AssistantUC)
	NewChatHandler(v1, deps.AssistantUC)

	// Single-page form/chat UI
	r.StaticFS("/ui", site.FS())
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/ui")
	})

	return r
}
