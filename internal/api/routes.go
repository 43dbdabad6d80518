package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/audioclass/domain"
	"github.com/satriahrh/audioclass/domain/entities"
	"github.com/satriahrh/audioclass/usecase"
)

// ClipClassifier runs the classification pipeline for one uploaded clip
type ClipClassifier interface {
	Classify(ctx context.Context, clip entities.UploadedClip) (entities.ClassificationOutcome, error)
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, service ClipClassifier, logger *zap.Logger) {
	// Liveness
	e.GET("/", liveness)
	e.GET("/health", liveness)

	e.POST("/upload/", func(c echo.Context) error {
		return uploadAudio(c, service, logger)
	})
}

func liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Message: livenessMessage})
}

// uploadAudio stores the clip, sends it for recognition and returns the classification
func uploadAudio(c echo.Context, service ClipClassifier, logger *zap.Logger) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	logger = logger.With(zap.String("requestID", requestID))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Upload rejected: missing file part", zap.Error(err))
		return c.JSON(http.StatusUnprocessableEntity, NewErrorResponse("file is required: "+err.Error()))
	}

	languageCode := c.FormValue("language_code")
	if languageCode == "" {
		languageCode = entities.DefaultLanguageCode
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(
			(&domain.StorageError{Op: "read", Path: fileHeader.Filename, Err: err}).Error()))
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		logger.Error("Failed to read uploaded file", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(
			(&domain.StorageError{Op: "read", Path: fileHeader.Filename, Err: err}).Error()))
	}

	clip := entities.UploadedClip{
		Filename:     fileHeader.Filename,
		Content:      content,
		LanguageCode: languageCode,
	}

	ctx := usecase.WithRequestID(c.Request().Context(), requestID)
	outcome, err := service.Classify(ctx, clip)
	if err != nil {
		logClassifyError(logger, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, NewSuccessResponse(outcome))
}

func logClassifyError(logger *zap.Logger, err error) {
	var storageErr *domain.StorageError
	var backendErr *domain.BackendError

	switch {
	case errors.As(err, &storageErr):
		logger.Error("Upload failed: storage error",
			zap.String("op", storageErr.Op),
			zap.String("path", storageErr.Path),
			zap.Error(err))
	case errors.As(err, &backendErr):
		logger.Error("Upload failed: backend error",
			zap.String("code", backendErr.Code),
			zap.String("backendMessage", backendErr.Message),
			zap.Error(err))
	default:
		logger.Error("Upload failed", zap.Error(err))
	}
}
