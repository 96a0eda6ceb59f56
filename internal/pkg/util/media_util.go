package util

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// MakeThumbnail 将图片等比缩放到指定宽度并编码为 JPEG
func MakeThumbnail(src io.Reader, width int) (*bytes.Buffer, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, err
	}

	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}

	buf := &bytes.Buffer{}
	if err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, err
	}
	return buf, nil
}

// GetSafeContentType 根据文件头嗅探 MIME，不信任客户端声明
func GetSafeContentType(data []byte) string {
	return mimetype.Detect(data).String()
}
