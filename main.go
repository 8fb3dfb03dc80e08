package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ImmrAD/the-digital-diner/configs"
	"github.com/ImmrAD/the-digital-diner/controllers"
	"github.com/ImmrAD/the-digital-diner/middlewares"
	"github.com/ImmrAD/the-digital-diner/pkg/cache"
	"github.com/ImmrAD/the-digital-diner/repository"
	"github.com/ImmrAD/the-digital-diner/routes"
	"github.com/ImmrAD/the-digital-diner/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Relational store: users, carts, orders
	db, err := configs.ConnectPostgres(cfg)
	if err != nil {
		log.Fatalf("connect postgres failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	// Document store: menu catalog
	mongoClient, err := configs.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("connect mongodb failed: %v", err)
	}

	// Menu read cache; optional, the service works without it
	var cacheClient *cache.Client
	if cfg.RedisURL != "" {
		cacheClient, err = cache.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatalf("connect redis failed: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, menu cache disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(mongoClient, cfg.MongoDBName)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo, cacheClient, cfg.MenuCacheTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	routes.RegisterRoutes(r, cfg, routes.Controllers{
		Auth:  controllers.NewAuthController(authSvc),
		Menu:  controllers.NewMenuController(menuSvc),
		Cart:  controllers.NewCartController(cartSvc),
		Order: controllers.NewOrderController(orderSvc),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.Println("server running at", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongodb disconnect: %v", err)
	}
	if err := cacheClient.Close(); err != nil {
		log.Printf("redis close: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("postgres close: %v", err)
		}
	}
}
