package wire

import (
	"Newsroom/internal/api"
	"Newsroom/internal/api/handler"
	"Newsroom/internal/client"
	"Newsroom/internal/config"
	"Newsroom/internal/job"
	"Newsroom/internal/pkg/cron"
	"Newsroom/internal/pkg/kafka"
	"Newsroom/internal/repository"
	"Newsroom/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PostApp 文章服务顶级组件
type PostApp struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildPostApp(db *gorm.DB) (*PostApp, error) {
	postRepo := repository.NewPostRepository(db)
	postService := service.NewPostService(postRepo)
	postHandler := handler.NewPostHandler(postService)

	return &PostApp{
		Router: api.SetupPostRouter(postHandler),
		DB:     db,
	}, nil
}

// CommentApp 评论服务顶级组件
type CommentApp struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildCommentApp(db *gorm.DB, cfg *config.Config) (*CommentApp, error) {
	commentRepo := repository.NewCommentRepository(db)
	postClient := client.NewPostClient(cfg.PostAPI)
	commentService := service.NewCommentService(commentRepo, postClient)
	commentHandler := handler.NewCommentHandler(commentService)

	return &CommentApp{
		Router: api.SetupCommentRouter(commentHandler),
		DB:     db,
	}, nil
}

// ReviewApp 审核服务顶级组件，含出站投递的定时任务与 Kafka 生产者
type ReviewApp struct {
	Router   *gin.Engine
	DB       *gorm.DB
	CronMgr  *cron.Manager
	Producer *kafka.Producer
}

func BuildReviewApp(db *gorm.DB, cfg *config.Config) (*ReviewApp, error) {
	reviewRepo := repository.NewReviewRepository(db)
	postClient := client.NewPostClient(cfg.PostAPI)
	reviewService := service.NewReviewService(reviewRepo, postClient)
	reviewHandler := handler.NewReviewHandler(reviewService)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	outboxJob := job.NewReviewOutboxJob(
		reviewRepo, postClient, producer,
		cfg.Outbox.BatchSize, cfg.Outbox.MaxAttempts,
	)
	cronMgr := cron.NewCronManager(outboxJob, cfg.Outbox)

	return &ReviewApp{
		Router:   api.SetupReviewRouter(reviewHandler),
		DB:       db,
		CronMgr:  cronMgr,
		Producer: producer,
	}, nil
}

// MessagingApp 通知服务顶级组件
type MessagingApp struct {
	KafkaManager *kafka.ConsumerManager
}

func BuildMessagingApp(cfg *config.Config) (*MessagingApp, error) {
	kafkaMgr, err := kafka.NewConsumerManager(cfg)
	if err != nil {
		return nil, err
	}

	return &MessagingApp{
		KafkaManager: kafkaMgr,
	}, nil
}
