package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/app/router"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/config"
	admintraderapi "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/adapters/traderapi"
	adminhandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/transport/handler"
	adminusecase "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/usecase"
	authadapters "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/auth/adapters"
	authhandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/auth/transport/handler"
	authusecase "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/auth/usecase"
	charttraderapi "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/adapters/traderapi"
	charthandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/transport/handler"
	chartusecase "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/usecase"
	productadapters "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/adapters"
	producthandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/transport/handler"
	productusecase "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/usecase"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/cache"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/db"
	platformhttp "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/http"
	jwtmw "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/jwt"
	platformredis "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/redis"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/session"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/web"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// db
	gormDB, err := db.OpenDB(cfg.DB)
	if err != nil {
		slog.Error("failed to open db", "error", err)
		os.Exit(1)
	}

	// Redis
	// セッションストアがRedis前提のため、接続できなければ起動しない
	rdb, err := platformredis.NewRedisClient(cfg.Redis)
	if err != nil {
		slog.Error("failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			slog.Error("failed to close Redis client", "error", err)
		}
	}()

	httpClient := platformhttp.NewHTTPClient(cfg.TraderAPI.Timeout)

	// Repository
	userRepo := authadapters.NewUserPostgres(gormDB)
	sessionRepo := session.NewSessionRedis(rdb, "session")
	productRepo := productadapters.NewProductRepository(gormDB)
	dataFrameRepo := charttraderapi.NewTraderAPI(
		charttraderapi.Config{BaseURL: cfg.TraderAPI.BaseURL}, httpClient)
	adminAPI := admintraderapi.NewTraderAPI(
		admintraderapi.Config{BaseURL: cfg.TraderAPI.BaseURL, APIKey: cfg.TraderAPI.APIKey}, httpClient)

	// Redisキャッシュでラップ
	cachedDataFrameRepo := cache.NewCachingDataFrameRepository(rdb, cfg.Cache.TTL, dataFrameRepo, "dataframe")

	// Usecase
	jwtGen := jwtmw.NewGenerator(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen, cfg.Auth.SessionTTL)
	chartUC := chartusecase.NewChartUsecase(cachedDataFrameRepo)
	adminUC := adminusecase.NewAdminUsecase(adminAPI, adminAPI)
	productUC := productusecase.NewProductUsecase(productRepo)

	// 管理者アカウントの初期シード
	// 既に登録済みなら何もしない
	if cfg.Auth.AdminUserID != "" && cfg.Auth.AdminPassword != "" {
		err := authUC.Signup(context.Background(), cfg.Auth.AdminUserID, cfg.Auth.AdminPassword)
		switch {
		case err == nil:
			slog.Info("admin user seeded", "user_id", cfg.Auth.AdminUserID)
		case !errors.Is(err, authusecase.ErrUserIDAlreadyExists):
			slog.Warn("failed to seed admin user", "error", err)
		}
	}

	// Handler
	handlers := router.Handlers{
		Chart: charthandler.NewChartHandler(chartUC),
		Admin: adminhandler.NewAdminHandler(adminUC),
		Auth: authhandler.NewAuthHandler(authUC, authhandler.CookieConfig{
			MaxAge: cfg.Auth.CookieMaxAge,
			Secure: cfg.Auth.SecureCookie,
		}),
		Product: producthandler.NewProductHandler(productUC),
		Views:   web.NewViewHandler(),
	}

	r := router.NewRouter(handlers, router.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		Sessions:  sessionRepo,
	})

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
