package bootstrap

import (
	"context"
	"log"
	"time"

	"sneakers-store-be/internal/config"
	"sneakers-store-be/internal/controller"
	"sneakers-store-be/internal/handler"
	"sneakers-store-be/internal/pkg/logger"
	"sneakers-store-be/internal/pkg/mailer"
	"sneakers-store-be/internal/repository/implementation"
	"sneakers-store-be/internal/service"
	"sneakers-store-be/internal/websocket"

	pktNats "sneakers-store-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatbotController     controller.IChatbotController
	AuthController        controller.IAuthController
	ProductController     controller.IProductController
	ReservationController controller.IReservationController
	ReviewController      controller.IReviewController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	FeedHandler  *handler.FeedHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	} else {
		log.Println("[WARN] SMTP not configured, support alerts disabled")
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS mirror is optional; the in-process bus alone is fine for a single
	// instance.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/chat_feed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	chatRepo := implementation.NewChatMessageRepository(db)
	userRepo := implementation.NewUserRepository(db)
	productRepo := implementation.NewProductRepository(db)
	reservationRepo := implementation.NewReservationRepository(db)
	reviewRepo := implementation.NewReviewRepository(db)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ChatEventsTopic, pubSub)
	statsCache := gocache.New(30*time.Second, time.Minute)

	chatbotService := service.NewChatbotService(chatRepo, publisherService, natsPub, statsCache, sysLogger)
	authService := service.NewAuthService(userRepo, sysLogger)
	productService := service.NewProductService(productRepo, rdb, sysLogger)
	reservationService := service.NewReservationService(reservationRepo, productRepo, sysLogger)
	reviewService := service.NewReviewService(reviewRepo, productRepo, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ChatEventsTopic,
		wsHub,
		emailService,
		cfg.App.SupportEmail,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		ChatbotController:     controller.NewChatbotController(chatbotService, sysLogger),
		AuthController:        controller.NewAuthController(authService, sysLogger),
		ProductController:     controller.NewProductController(productService, sysLogger),
		ReservationController: controller.NewReservationController(reservationService, sysLogger),
		ReviewController:      controller.NewReviewController(reviewService, sysLogger),

		ConsumerService: consumerService,

		FeedHandler:  handler.NewFeedHandler(wsHub, wsLogger),
		WebSocketHub: wsHub,
	}
}
