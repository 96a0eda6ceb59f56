package handler

import (
	"Boomer/internal/pkg/response"
	"Boomer/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

func (s *MediaHandler) UploadPoster(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	poster, err := s.mediaSvc.UploadPoster(c.Request.Context(), file.Filename, reader)
	if err != nil {
		log.WarnContext(c.Request.Context(), "poster upload failed", "filename", file.Filename, "size", file.Size, "err", err)
		response.Error(c, err)
		return
	}
	response.Success(c, poster)
}
