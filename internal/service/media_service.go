package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/util"
	"bytes"
	"context"
	"io"
	"path"
	"strings"
	"time"
)

const (
	thumbnailWidth = 320
	maxPosterSize  = 10 << 20
)

type MediaService interface {
	UploadPoster(ctx context.Context, filename string, src io.Reader) (*dto.PosterDTO, error)
}

type mediaServiceImpl struct {
	storage ObjectStorage
}

// NewMediaService storage 为 nil 表示对象存储未启用
func NewMediaService(storage ObjectStorage) MediaService {
	return &mediaServiceImpl{storage: storage}
}

// UploadPoster 上传海报原图与 320px 缩略图
func (s *mediaServiceImpl) UploadPoster(ctx context.Context, filename string, src io.Reader) (*dto.PosterDTO, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	data, err := io.ReadAll(io.LimitReader(src, maxPosterSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || len(data) > maxPosterSize {
		return nil, ErrFileNotSupported
	}

	contentType := util.GetSafeContentType(data)
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	thumb, err := util.MakeThumbnail(bytes.NewReader(data), thumbnailWidth)
	if err != nil {
		return nil, ErrFileNotSupported
	}

	base := "posters/" + time.Now().Format("2006/01/02/") + util.NewID()
	url, err := s.storage.Upload(ctx, base+strings.ToLower(path.Ext(filename)), data, contentType)
	if err != nil {
		return nil, err
	}
	thumbURL, err := s.storage.Upload(ctx, base+"_thumb.jpg", thumb.Bytes(), "image/jpeg")
	if err != nil {
		return nil, err
	}

	return &dto.PosterDTO{URL: url, ThumbnailURL: thumbURL}, nil
}
