package dto

type AddCommentDTO struct {
	MovieID  string `json:"movie_id" validate:"required"`
	UserName string `json:"user_name" validate:"max=50"`
	Text     string `json:"text" validate:"max=2000"`
	Image    string `json:"image" validate:"omitempty,url"`
	Gif      string `json:"gif" validate:"omitempty,url"`
	Video    string `json:"video" validate:"omitempty,url"`
	URL      string `json:"url" validate:"omitempty,url"`
}

type CommentTargetDTO struct {
	MovieID   string `json:"movie_id" form:"movie_id" validate:"required"`
	CommentID string `json:"comment_id" form:"comment_id" validate:"required"`
}

type ReplyCommentDTO struct {
	MovieID   string `json:"movie_id" validate:"required"`
	CommentID string `json:"comment_id" validate:"required"`
	UserName  string `json:"user_name" validate:"max=50"`
	Text      string `json:"text" validate:"required,max=2000"`
}

// LikeCommentDTO likes 为 true 时 +1，false 时 -1
type LikeCommentDTO struct {
	MovieID   string `json:"movie_id" validate:"required"`
	CommentID string `json:"comment_id" validate:"required"`
	Likes     *bool  `json:"likes" validate:"required"`
}

// DislikeCommentDTO dislikes 为 true 时 +1，false 时 -1
type DislikeCommentDTO struct {
	MovieID   string `json:"movie_id" validate:"required"`
	CommentID string `json:"comment_id" validate:"required"`
	Dislikes  *bool  `json:"dislikes" validate:"required"`
}
