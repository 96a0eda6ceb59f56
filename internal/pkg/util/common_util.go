package util

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID 生成按时间有序的不透明 ID (UUIDv7，去掉连字符)
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return strings.ReplaceAll(id.String(), "-", "")
}

// RandomHex 生成 n 位随机十六进制串
func RandomHex(n int) string {
	buf := make([]byte, (n+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return NewID()[:n]
	}
	return hex.EncodeToString(buf)[:n]
}

// Ptr 返回任意值的指针
func Ptr[T any](v T) *T {
	return &v
}

// Deref 解引用，nil 时返回零值
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
