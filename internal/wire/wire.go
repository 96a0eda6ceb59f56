package wire

import (
	"Boomer/internal/api"
	"Boomer/internal/api/config"
	"Boomer/internal/api/handler"
	"Boomer/internal/job"
	"Boomer/internal/pkg/cron"
	"Boomer/internal/pkg/es"
	"Boomer/internal/pkg/kafka"
	"Boomer/internal/pkg/minio"
	mongoRepo "Boomer/internal/pkg/mongo"
	"Boomer/internal/pkg/redis"
	"Boomer/internal/repository"
	"Boomer/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router        *gin.Engine
	DB            *gorm.DB
	KafkaManager  *kafka.ConsumerManager
	KafkaProducer *kafka.ReviewEventProducer
	CronMgr       *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	// repo 层
	movieRepo := repository.NewMovieRepo(db)
	userRepo := repository.NewUserRepo(db)
	linkRepo := repository.NewDownloadLinkRepo(db)
	commentRepo := mongoRepo.NewCommentThreadRepo(mongoDB)
	reviewRepo := mongoRepo.NewReviewThreadRepo(mongoDB)

	// 外部组件，未启用时保持接口为 nil
	var searcher service.MovieSearcher
	if cfg.Elastic.Enable {
		searcher = es.NewMovieRepo(es.Client, es.MovieIndex)
	}
	var storage service.ObjectStorage
	if cfg.MinIO.Enable {
		storage = minio.NewStorage(cfg.MinIO)
	}

	trendingCache := redis.NewTrendingCache()
	notifiers := []service.ReviewNotifier{redis.NewReviewBroadcaster()}

	app := &ApplicationContainer{DB: db}
	if cfg.Kafka.Enable {
		producer, err := kafka.NewReviewEventProducer(cfg)
		if err != nil {
			return nil, err
		}
		kafkaMgr, err := kafka.NewConsumerManager(cfg, trendingCache)
		if err != nil {
			_ = producer.Close()
			return nil, err
		}
		notifiers = append(notifiers, producer)
		app.KafkaProducer = producer
		app.KafkaManager = kafkaMgr
	} else {
		notifiers = append(notifiers, trendingCache)
	}

	// service 层
	maxRetries := cfg.Thread.MaxRetries
	movieService := service.NewMovieService(movieRepo, linkRepo, commentRepo, reviewRepo, searcher)
	linkService := service.NewDownloadLinkService(movieRepo, linkRepo)
	trendingService := service.NewTrendingService(movieRepo, reviewRepo, trendingCache, cfg.Trending)
	commentService := service.NewCommentService(commentRepo, maxRetries)
	reviewService := service.NewReviewService(movieRepo, reviewRepo, maxRetries, notifiers...)
	userService := service.NewUserService(userRepo, redis.NewTokenStore())
	mediaService := service.NewMediaService(storage)

	// handler 层
	handlers := &api.HandlersGroup{
		MovieHandler:   handler.NewMovieHandler(movieService, linkService, trendingService),
		CommentHandler: handler.NewCommentHandler(commentService),
		ReviewHandler:  handler.NewReviewHandler(reviewService),
		UserHandler:    handler.NewUserHandler(userService),
		MediaHandler:   handler.NewMediaHandler(mediaService),
		WsHandler:      handler.NewWsHandler(reviewService, redis.IsTokenBlacklisted),
	}
	app.Router = api.SetupRouter(handlers)

	// 定时任务
	trendingJob := job.NewTrendingJob(trendingService)
	app.CronMgr = cron.NewCronManager(trendingJob, cfg.Trending.RefreshCron)

	return app, nil
}
