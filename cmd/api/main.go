package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/northhaul/northhaul-backend/api/controllers"
	"github.com/northhaul/northhaul-backend/api/routes"
	"github.com/northhaul/northhaul-backend/internal/admins"
	"github.com/northhaul/northhaul-backend/internal/auth"
	"github.com/northhaul/northhaul-backend/internal/blog"
	"github.com/northhaul/northhaul-backend/internal/jobs"
	"github.com/northhaul/northhaul-backend/internal/orders"
	"github.com/northhaul/northhaul-backend/internal/products"
	"github.com/northhaul/northhaul-backend/internal/seed"
	"github.com/northhaul/northhaul-backend/internal/stats"
	"github.com/northhaul/northhaul-backend/internal/testimonials"
	"github.com/northhaul/northhaul-backend/internal/warehouse"
	"github.com/northhaul/northhaul-backend/pkg/auth/session"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/db"
	"github.com/northhaul/northhaul-backend/pkg/logger"
	"github.com/northhaul/northhaul-backend/pkg/migrate"
	"github.com/northhaul/northhaul-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	if err := seed.Run(context.Background(), dbClient, *cfg, logg); err != nil {
		logg.Error(context.Background(), "failed to seed database", err)
		os.Exit(1)
	}

	// Redis backs the session store when configured; otherwise sessions live
	// in process memory, which is fine for a single dev instance.
	var sessionStore session.Store = session.NewMemoryStore()
	var cachePinger controllers.Pinger
	if cfg.Redis.Configured() {
		redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		sessionStore = session.NewRedisStore(redisClient)
		cachePinger = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, using in-memory sessions")
	}

	sessionManager, err := session.NewManager(sessionStore, cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	adminRepo := admins.NewRepository(dbClient.DB())
	authService, err := auth.NewService(adminRepo, sessionManager)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	jobRepo := jobs.NewRepository(dbClient.DB())
	jobService, err := jobs.NewService(jobRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create jobs service", err)
		os.Exit(1)
	}

	blogService, err := blog.NewService(blog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create blog service", err)
		os.Exit(1)
	}

	testimonialService, err := testimonials.NewService(testimonials.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create testimonials service", err)
		os.Exit(1)
	}

	productRepo := products.NewRepository(dbClient.DB())
	productService, err := products.NewService(productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.NewRepository(dbClient.DB()), productRepo, dbClient)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	warehouseService, err := warehouse.NewService(warehouse.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create warehouse service", err)
		os.Exit(1)
	}

	statsService, err := stats.NewService(jobRepo, orderService, warehouseService, cfg.Stats)
	if err != nil {
		logg.Error(context.Background(), "failed to create stats service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, cachePinger, sessionManager, routes.Services{
			Auth:         authService,
			Jobs:         jobService,
			Blog:         blogService,
			Testimonials: testimonialService,
			Products:     productService,
			Orders:       orderService,
			Warehouse:    warehouseService,
			Stats:        statsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
