package router

import (
	"time"

	"lsbets/config"
	"lsbets/internal/auth"
	"lsbets/internal/handler"
	"lsbets/internal/matches"
	"lsbets/internal/middleware"
	"lsbets/internal/repository"
	"lsbets/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, log *zap.Logger, gw service.Gateway, rdb *redis.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewFixedWindowLimiter(100, 60*time.Second)))

	// Repositories
	bankrollRepo := repository.NewBankrollRepository(db)
	betRepo := repository.NewBetRepository(db)
	withdrawRepo := repository.NewWithdrawRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	wagerSvc := service.NewWagerService(betRepo, log)
	depositSvc := service.NewDepositService(gw, bankrollRepo, notificationRepo, log)
	withdrawalSvc := service.NewWithdrawalService(withdrawRepo, bankrollRepo, notificationRepo, log)
	notificationSvc := service.NewNotificationService(notificationRepo)

	var matchCache *matches.Cache
	if rdb != nil {
		matchCache = matches.NewCache(rdb)
	}
	matchSvc := matches.NewService(matches.NewClient(&cfg.Sports), matchCache, log)

	provider := auth.NewProvider(&cfg.OAuth)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, provider, userRepo, log)
	betHandler := handler.NewBetHandler(wagerSvc)
	bankingHandler := handler.NewBankingHandler(depositSvc, withdrawalSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	matchHandler := handler.NewMatchHandler(matchSvc)
	adminHandler := handler.NewAdminHandler(withdrawalSvc, wagerSvc, statsRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.GET("/login", authHandler.Login)
			authGroup.POST("/callback", authHandler.Callback)
			authGroup.POST("/admin/login", authHandler.AdminLogin)
		}

		api.GET("/matches", matchHandler.Upcoming)
		api.GET("/matches/live", matchHandler.Live)

		bets := api.Group("/bets", authMw)
		{
			bets.POST("", betHandler.Place)
			bets.GET("", betHandler.List)
		}

		banking := api.Group("/banking", authMw)
		{
			banking.GET("/balance", bankingHandler.Balance)
			banking.POST("/deposit/create-payment", bankingHandler.CreatePayment)
			banking.POST("/deposit", bankingHandler.Deposit)
			banking.POST("/withdraw", bankingHandler.Withdraw)
		}

		notifications := api.Group("/notifications", authMw)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
			notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
		}

		admin := api.Group("/admin", authMw, middleware.AdminRequired())
		{
			admin.GET("/withdrawals", adminHandler.ListWithdrawals)
			admin.POST("/withdrawals/:id/resolve", adminHandler.ResolveWithdrawal)
			admin.GET("/bets", adminHandler.ListBets)
			admin.GET("/stats", adminHandler.Stats)
		}
	}

	return r
}
