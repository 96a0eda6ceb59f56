package dto

type AddDownloadLinkDTO struct {
	MovieID string `json:"movie_id" validate:"required"`
	URL     string `json:"url" validate:"required,url"`
}

// RateDownloadLinkDTO rating 取值 inc / decr
type RateDownloadLinkDTO struct {
	ID     uint64 `json:"id" validate:"required"`
	Rating string `json:"rating" validate:"required"`
}
