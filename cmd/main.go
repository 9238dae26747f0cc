package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/wordarena/WordArena/api/middleware"
	v1 "github.com/wordarena/WordArena/api/v1"
	"github.com/wordarena/WordArena/internal/apperrors"
	"github.com/wordarena/WordArena/internal/battle"
	"github.com/wordarena/WordArena/internal/chat"
	"github.com/wordarena/WordArena/internal/content"
	"github.com/wordarena/WordArena/internal/leaderboard"
	"github.com/wordarena/WordArena/internal/user"
	"github.com/wordarena/WordArena/pkg/db"
	"github.com/wordarena/WordArena/pkg/logger"
	"github.com/wordarena/WordArena/pkg/storage"
	"github.com/wordarena/WordArena/websocket"
	"github.com/wordarena/WordArena/websocket/actions"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(
		&user.User{},
		&user.Profile{},
		&content.ReadingPassage{},
		&content.ComprehensionQuestion{},
		&content.SpellingWord{},
		&battle.Match{},
	)

	if err := storage.InitR2(); err != nil {
		logger.Log.Infof("Avatar storage disabled: %v", err)
	}

	userRepo := user.NewGormUserRepository()
	userService := user.NewUserService(userRepo)

	contentRepo := content.NewGormContentRepository()
	contentService := content.NewContentService(contentRepo)
	if err := content.Seed(contentRepo); err != nil {
		logger.Log.Fatalf("Failed to seed content: %v", err)
	}

	lbRepo := leaderboard.NewRedisLeaderboardRepository()
	lbService := leaderboard.NewLeaderboardService(lbRepo, userRepo)
	if err := lbService.Rebuild(); err != nil {
		logger.Log.Errorf("Failed to rebuild leaderboard: %v", err)
	}

	queueRepo := battle.NewRedisQueueRepository()
	sessionRepo := battle.NewRedisSessionRepository()
	matchRepo := battle.NewGormMatchRepository()

	sessionService := battle.NewSessionService(
		sessionRepo,
		matchRepo,
		userRepo,
		userService,
		lbService,
		contentService,
	)
	queueService := battle.NewQueueService(queueRepo, sessionRepo)

	if err := sessionRepo.SubscribeMessages(); err != nil {
		logger.Log.Fatalf("Failed to subscribe to battle messages: %v", err)
	}

	matchmaker := battle.NewMatchmaker(queueRepo, sessionService)
	matchmaker.Start()

	v1.UserService = userService
	v1.ContentService = contentService
	v1.LeaderboardService = lbService
	v1.QueueService = queueService
	v1.SessionService = sessionService
	v1.ChatResponder = chat.DefaultResponder()
	websocket.Sessions = sessionService
	websocket.Queues = queueService
	actions.Sessions = sessionService

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterContentRoutes(api.Group("/content"))
	v1.RegisterLeaderboardRoutes(api.Group("/leaderboard"))

	account := api.Group("/account")
	account.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterAccountRoutes(account)
	v1.RegisterStandingRoutes(account)

	battles := api.Group("/battles")
	battles.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterBattleRoutes(battles)

	tutor := api.Group("/chat")
	tutor.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterChatRoutes(tutor)

	e.GET("/game", websocket.WebSocketHandler)

	e.Logger.Fatal(e.Start(":8080"))
}
