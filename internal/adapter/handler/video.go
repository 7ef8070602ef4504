package handler

import (
	stdErrors "errors"
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-subtitler/errors"
	videodto "github.com/johnquangdev/video-subtitler/internal/adapter/dto/video"
	"github.com/johnquangdev/video-subtitler/internal/usecase/video"
	"github.com/johnquangdev/video-subtitler/pkg/languages"
	pkgvalidator "github.com/johnquangdev/video-subtitler/pkg/validator"
)

// Video handles the subtitle pipeline endpoints
type Video struct {
	service video.Service
	logger  *zap.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(service video.Service, logger *zap.Logger) *Video {
	return &Video{service: service, logger: logger}
}

// UploadVideo stores an uploaded video
// @Summary      Upload a video
// @Description  Stores a video file and returns its identifier. The part's content type must start with video/.
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Video file"
// @Success      200  {object}  videodto.UploadVideoResponse
// @Failure      400  {object}  common.ErrorResponse  "Not a video or missing file"
// @Failure      413  {object}  common.ErrorResponse  "Upload too large"
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/upload-video [post]
func (h *Video) UploadVideo(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		// body limit hit while streaming a chunked request
		var he *echo.HTTPError
		if stdErrors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
			return err
		}
		return HandleError(h.logger, c, errors.ErrMissingFile())
	}

	contentType := file.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(contentType), "video/") {
		return HandleError(h.logger, c, errors.ErrUnsupportedMediaType(contentType))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadFailed(err))
	}
	defer src.Close()

	upload, err := h.service.Upload(c.Request().Context(), video.UploadInput{
		Filename:    file.Filename,
		ContentType: contentType,
		Body:        src,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, contentType))
	}

	return HandleSuccess(h.logger, c, videodto.NewUploadVideoResponse(upload))
}

// ProcessVideo generates subtitles for an uploaded video
// @Summary      Generate subtitles
// @Description  Extracts audio, transcribes it, optionally translates each caption and writes an SRT file.
// @Description  Translation failures keep the original caption.
// @Tags         Video
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        file_id          formData  string  true   "Upload identifier"
// @Param        target_language  formData  string  false  "Target language code or original"  default(original)
// @Success      200  {object}  videodto.ProcessVideoResponse
// @Failure      400  {object}  common.ErrorResponse
// @Failure      404  {object}  common.ErrorResponse  "Unknown upload"
// @Failure      409  {object}  common.ErrorResponse  "Upload is already being processed"
// @Failure      500  {object}  common.ErrorResponse  "Extraction or transcription failed"
// @Router       /api/process-video [post]
func (h *Video) ProcessVideo(c echo.Context) error {
	var req videodto.ProcessVideoRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.FileID = strings.TrimSpace(req.FileID)
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(pkgvalidator.Message(err)))
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = languages.Original
	}

	if h.logger != nil {
		h.logger.Info("🎬 Processing video",
			zap.String("request_id", getRequestID(c)),
			zap.String("file_id", req.FileID),
			zap.String("target_language", req.TargetLanguage),
		)
	}

	result, err := h.service.Process(c.Request().Context(), video.ProcessInput{
		FileID:         req.FileID,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, req.FileID))
	}

	return HandleSuccess(h.logger, c, videodto.NewProcessVideoResponse(result))
}

// DownloadSRT streams a generated subtitle file
// @Summary      Download subtitles
// @Description  Returns the raw SRT bytes as an attachment
// @Tags         Video
// @Produce      octet-stream
// @Param        filename  path  string  true  "Subtitle file name returned by process-video"
// @Success      200  {file}    binary
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/download-srt/{filename} [get]
func (h *Video) DownloadSRT(c echo.Context) error {
	filename := c.Param("filename")

	rc, err := h.service.OpenSubtitle(c.Request().Context(), filename)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, filename))
	}
	defer rc.Close()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Stream(http.StatusOK, echo.MIMEOctetStream, rc)
}

// GetLanguages lists the supported target languages
// @Summary      Supported languages
// @Tags         Video
// @Produce      json
// @Success      200  {object}  videodto.LanguagesResponse
// @Router       /api/languages [get]
func (h *Video) GetLanguages(c echo.Context) error {
	return HandleSuccess(h.logger, c, videodto.LanguagesResponse{Languages: languages.Catalog()})
}

// GetLatestJob returns the latest processing job of an upload
// @Summary      Latest processing job
// @Description  Status, subtitle file and error of the most recent process call for an upload
// @Tags         Video
// @Produce      json
// @Param        file_id  path  string  true  "Upload identifier"
// @Success      200  {object}  videodto.JobResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/jobs/{file_id} [get]
func (h *Video) GetLatestJob(c echo.Context) error {
	fileID := c.Param("file_id")

	job, err := h.service.LatestJob(c.Request().Context(), fileID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, fileID))
	}

	return HandleSuccess(h.logger, c, videodto.NewJobResponse(job))
}
