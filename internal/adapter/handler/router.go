package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/video-subtitler/internal/adapter/dto/common"
	pkgvalidator "github.com/johnquangdev/video-subtitler/pkg/validator"

	// registers the swagger spec
	_ "github.com/johnquangdev/video-subtitler/docs"
)

// Router holds all handlers
type Router struct {
	videoHandler *Video
}

// NewRouter creates a new router with all handlers
func NewRouter(videoHandler *Video) *Router {
	return &Router{videoHandler: videoHandler}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	if e.Validator == nil {
		e.Validator = pkgvalidator.New()
	}

	api := e.Group("/api")
	api.GET("/health", rt.healthCheck)

	api.POST("/upload-video", rt.videoHandler.UploadVideo)
	api.POST("/process-video", rt.videoHandler.ProcessVideo)
	api.GET("/download-srt/:filename", rt.videoHandler.DownloadSRT)
	api.GET("/languages", rt.videoHandler.GetLanguages)
	api.GET("/jobs/:file_id", rt.videoHandler.GetLatestJob)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /api/health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return HandleSuccess(nil, c, common.HealthResponse{
		Status:  "healthy",
		Message: "Video subtitle service is running",
	})
}
