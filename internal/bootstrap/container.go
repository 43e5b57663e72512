package bootstrap

import (
	"context"
	"log"

	"noteverse-be/internal/config"
	"noteverse-be/internal/controller"
	"noteverse-be/internal/handler"
	"noteverse-be/internal/pkg/logger"
	"noteverse-be/internal/pkg/mailer"
	"noteverse-be/internal/pkg/webhook"
	"noteverse-be/internal/repository/unitofwork"
	"noteverse-be/internal/service"
	"noteverse-be/internal/websocket"
	pktNats "noteverse-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const leaderboardTopic = "leaderboard.invalidate"

type Container struct {
	// Controllers
	NoteController        controller.INoteController
	CommentController     controller.ICommentController
	UpvoteController      controller.IUpvoteController
	BookmarkController    controller.IBookmarkController
	LeaderboardController controller.ILeaderboardController
	WebhookController     controller.IWebhookController
	UserController        controller.IUserController

	// Background services, run by main.go
	ConsumerService     service.IConsumerService
	NotificationService service.INotificationService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	verifier, err := webhook.NewVerifier(cfg.Webhook.SigningSecret)
	if err != nil {
		log.Fatalf("[FATAL] Invalid webhook signing secret: %v", err)
	}

	// 2. Infrastructure
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(leaderboardTopic, pubSub)
	leaderboardService := service.NewLeaderboardService(uowFactory, rdb, sysLogger)
	consumerService := service.NewConsumerService(pubSub, leaderboardTopic, leaderboardService, sysLogger)

	userService := service.NewUserService(uowFactory)
	commentService := service.NewCommentService(uowFactory, natsPub, cfg.Comments.MaxDepth, sysLogger)
	noteService := service.NewNoteService(uowFactory, commentService, publisherService, natsPub, sysLogger)
	upvoteService := service.NewUpvoteService(uowFactory, publisherService, natsPub, sysLogger)
	bookmarkService := service.NewBookmarkService(uowFactory)
	webhookService := service.NewWebhookService(uowFactory, verifier, emailService, publisherService, natsPub, sysLogger)
	notificationService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NoteController:        controller.NewNoteController(noteService),
		CommentController:     controller.NewCommentController(commentService),
		UpvoteController:      controller.NewUpvoteController(upvoteService),
		BookmarkController:    controller.NewBookmarkController(bookmarkService),
		LeaderboardController: controller.NewLeaderboardController(leaderboardService),
		WebhookController:     controller.NewWebhookController(webhookService),
		UserController:        controller.NewUserController(userService),

		ConsumerService:     consumerService,
		NotificationService: notificationService,

		NotificationHandler: handler.NewNotificationHandler(notificationService, userService, wsHub, wsLogger),
		WebSocketHub:        wsHub,
	}
}
