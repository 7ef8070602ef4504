package handler

import (
	"context"
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-subtitler/errors"
	"github.com/johnquangdev/video-subtitler/internal/adapter/dto/common"
	ucErrors "github.com/johnquangdev/video-subtitler/internal/usecase/errors"
)

// getRequestID reads the request id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Response() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as a JSON 200 response
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	body := common.ErrorResponse{
		Code:    appErr.Code.String(),
		Message: appErr.Message,
		Details: appErr.Details,
	}
	if appErr.Raw != nil {
		body.Info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps usecase errors to their HTTP representation
func toAppError(err error, subject string) error {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, ucErrors.ErrInvalidContentType):
		return errors.ErrUnsupportedMediaType(subject)
	case stdErrors.Is(err, ucErrors.ErrUploadNotFound):
		return errors.ErrVideoNotFound(subject)
	case stdErrors.Is(err, ucErrors.ErrSubtitleNotFound):
		return errors.ErrSubtitleNotFound(subject)
	case stdErrors.Is(err, ucErrors.ErrJobNotFound):
		return errors.ErrJobNotFound(subject)
	case stdErrors.Is(err, ucErrors.ErrProcessingInProgress):
		return errors.ErrProcessingConflict(subject)
	case stdErrors.Is(err, ucErrors.ErrAudioExtraction):
		return errors.ErrAudioExtractionFailed(err)
	case stdErrors.Is(err, ucErrors.ErrTranscription):
		return errors.ErrAITranscriptionFailed(err)
	case stdErrors.Is(err, ucErrors.ErrStorage):
		return errors.ErrStorageFailed("subtitle", err)
	case stdErrors.Is(err, context.DeadlineExceeded), stdErrors.Is(err, context.Canceled):
		return errors.ErrProcessingFailed(err)
	default:
		return errors.ErrInternal(err)
	}
}

// NewHTTPErrorHandler renders echo's own errors (unknown routes, body limit,
// bind failures) in the same shape as application errors.
func NewHTTPErrorHandler(logger *zap.Logger, uploadLimit string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			switch he.Code {
			case http.StatusRequestEntityTooLarge:
				err = errors.ErrPayloadTooLarge(uploadLimit)
			case http.StatusNotFound:
				err = errors.ErrNotFound("route")
			case http.StatusMethodNotAllowed:
				err = errors.AppError{
					HTTPCode: http.StatusMethodNotAllowed,
					Code:     errors.ErrorCode_INVALID_ARGUMENT,
					Message:  "Method not allowed",
				}
			default:
				if he.Code < http.StatusInternalServerError {
					msg, _ := he.Message.(string)
					if msg == "" {
						msg = http.StatusText(he.Code)
					}
					err = errors.AppError{
						HTTPCode: he.Code,
						Code:     errors.ErrorCode_INVALID_PAYLOAD,
						Message:  msg,
					}
				}
			}
		}

		if writeErr := HandleError(logger, c, err); writeErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
