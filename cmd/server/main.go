package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"task_backend/internal/app/di"
	"task_backend/internal/app/router"
	authadapters "task_backend/internal/feature/auth/adapters"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	authusecase "task_backend/internal/feature/auth/usecase"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	taskusecase "task_backend/internal/feature/tasks/usecase"
	"task_backend/internal/platform/config"
	infradb "task_backend/internal/platform/db"
	jwtmw "task_backend/internal/platform/jwt"
	infraredis "task_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Tokens
	tokens := jwtmw.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	taskRepo := di.NewTaskRepository(rdb, db, cfg.CacheTTL)

	// Usecase
	rules := authusecase.Rules{
		AllowedEmailDomains: cfg.AllowedEmailDomains,
		MinPasswordLength:   cfg.MinPasswordLength,
	}
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, rules)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, cfg.DevMode)
	taskH := taskhandler.NewTaskHandler(taskUC, cfg.DevMode)

	r := router.NewRouter(authH, taskH, tokens)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
