package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/postcalendar/internal/models"
	"github.com/maheshrc27/postcalendar/pkg/utils"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedMedia = errors.New("unsupported media type")

var allowedMediaTypes = map[string]struct{}{
	"jpg": {}, "png": {}, "gif": {}, "webp": {}, "mp4": {}, "mov": {},
}

type MediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*models.MediaAsset, error)
}

type mediaService struct {
	storage MediaStorage
}

// NewMediaService accepts a nil storage; uploads then fail with
// ErrStorageDisabled.
func NewMediaService(storage MediaStorage) MediaService {
	return &mediaService{storage: storage}
}

func (s *mediaService) Upload(ctx context.Context, file *multipart.FileHeader) (*models.MediaAsset, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	kind, err := filetype.Match(content)
	if err != nil || kind == types.Unknown {
		return nil, ErrUnsupportedMedia
	}
	if _, ok := allowedMediaTypes[kind.Extension]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, kind.Extension)
	}

	key, err := utils.NewObjectKey()
	if err != nil {
		return nil, err
	}
	key = key + "." + kind.Extension

	url, err := s.storage.Upload(ctx, key, content, kind.MIME.Value)
	if err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	logrus.WithFields(logrus.Fields{"key": key, "mime": kind.MIME.Value}).Info("media uploaded")
	return &models.MediaAsset{
		Key:      key,
		URL:      url,
		MimeType: kind.MIME.Value,
		Size:     int64(len(content)),
	}, nil
}
