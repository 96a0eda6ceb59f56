package es

// MovieES 对应 movie_index 的文档结构，文档 ID 即 movie_id
type MovieES struct {
	MovieID    string   `json:"movie_id"`
	MovieTitle string   `json:"movie_title"`
	MovieGenre []string `json:"movie_genre"`
}
