package api

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/api/middleware"
	"Boomer/internal/pkg/logger"
	"Boomer/internal/pkg/redis"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	auth := middleware.AuthMiddleware(redis.IsTokenBlacklisted)
	authOpt := middleware.AuthOptionalMiddleware(redis.IsTokenBlacklisted)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Response{
			Status:  http.StatusOK,
			Message: "pong",
		})
	})

	movieGroup := r.Group("/movies")
	{
		openGroup := movieGroup.Group("")
		openGroup.Use(authOpt)
		{
			openGroup.GET("", group.MovieHandler.GetMovies)
			openGroup.GET("/by_id", group.MovieHandler.GetMovieByID)
			openGroup.POST("/genre", group.MovieHandler.GetMoviesByGenre)
			openGroup.GET("/type", group.MovieHandler.GetMoviesByType)
			openGroup.POST("/search", group.MovieHandler.SearchMovies)
			openGroup.GET("/search", group.MovieHandler.SearchMovies)
			openGroup.GET("/trending", group.MovieHandler.GetTrending)
			openGroup.GET("/top_rated", group.MovieHandler.GetTopRated)
			openGroup.GET("/get_recommendations", group.MovieHandler.GetRecommendations)
		}

		authGroup := movieGroup.Group("")
		authGroup.Use(auth)
		{
			authGroup.POST("", group.MovieHandler.UploadMovie)
			authGroup.PUT("/update", group.MovieHandler.UpdateMovie)
			authGroup.PUT("/add_download_link", group.MovieHandler.AddDownloadLink)
			authGroup.PUT("/rate_download_link", group.MovieHandler.RateDownloadLink)
			authGroup.PUT("/update_recommends", group.MovieHandler.UpdateRecommend)
			authGroup.DELETE("/delete", group.MovieHandler.DeleteMovie)
		}
	}

	commentGroup := r.Group("/movie/comment")
	{
		commentGroup.GET("", group.CommentHandler.GetComments)

		authGroup := commentGroup.Group("")
		authGroup.Use(auth)
		{
			authGroup.PUT("", group.CommentHandler.AddComment)
			authGroup.PUT("/like", group.CommentHandler.LikeComment)
			authGroup.PUT("/dislike", group.CommentHandler.DislikeComment)
			authGroup.PUT("/reply", group.CommentHandler.ReplyComment)
			authGroup.DELETE("/delete", group.CommentHandler.DeleteComment)
		}
	}

	reviewGroup := r.Group("/reviews")
	{
		reviewGroup.GET("", group.ReviewHandler.GetReviews)
		reviewGroup.GET("/ws", group.WsHandler.Connect)

		authGroup := reviewGroup.Group("")
		authGroup.Use(auth)
		{
			authGroup.PUT("", group.ReviewHandler.AddReview)
			authGroup.PUT("/update", group.ReviewHandler.UpdateReview)
			authGroup.DELETE("/delete", group.ReviewHandler.DeleteReview)
		}
	}

	authRoute := r.Group("/auth")
	{
		authRoute.POST("/signup", group.UserHandler.Signup)
		authRoute.POST("/login", group.UserHandler.Login)
		authRoute.POST("/logout", auth, group.UserHandler.Logout)
	}

	userGroup := r.Group("/user")
	{
		userGroup.GET("/by_id", group.UserHandler.GetUserByID)

		authGroup := userGroup.Group("")
		authGroup.Use(auth)
		{
			authGroup.GET("/info", group.UserHandler.GetUserInfo)
			authGroup.PUT("/update", group.UserHandler.UpdateUser)
		}
	}

	mediaGroup := r.Group("/media")
	{
		mediaGroup.Use(auth)
		mediaGroup.POST("/poster", group.MediaHandler.UploadPoster)
	}

	return r
}
