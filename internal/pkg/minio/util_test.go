package minio

import (
	"Boomer/internal/api/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPublicURL(t *testing.T) {
	cfg := config.MinIOConfig{ExternalEndpoint: "cdn.example.com", MainBucket: "boomer"}
	assert.Equal(t,
		"https://cdn.example.com/boomer/posters/2026/03/20/abc.png",
		GetPublicURL(cfg, "posters/2026/03/20/abc.png"))
}
