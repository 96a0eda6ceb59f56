package dto

type PosterDTO struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}
